package cli

import (
	"fmt"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newStrategiesCmd(flags *rootFlags) *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "List the configured tax strategies",
		Long:  "List the strategy registry in precedence order. The first strategy applicable to an order is the one used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := absProjectPath(projectPath)
			if err != nil {
				return err
			}

			svc := newTaxService(cmd, flags, absPath, nil)
			infos, err := svc.Strategies(absPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, infos)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStrategies(infos))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path holding .taxkraft.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output strategies as JSON")

	return cmd
}
