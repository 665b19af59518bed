package cli

import (
	"errors"
	"fmt"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/spf13/cobra"
)

func newResolveCmd(flags *rootFlags) *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <country>",
		Short: "Show which strategy applies to a country",
		Long:  "Resolve the strategy an order for the given country would be taxed with, without processing or recording anything.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			country := args[0]

			absPath, err := absProjectPath(projectPath)
			if err != nil {
				return err
			}

			svc := newTaxService(cmd, flags, absPath, nil)
			info, err := svc.Resolve(absPath, country)
			if err != nil {
				var unresolved *domain.NoApplicableStrategyError
				if errors.As(err, &unresolved) && !jsonOutput {
					fmt.Fprint(cmd.ErrOrStderr(), tui.RenderUnresolved(country, unresolved))
				}
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, info)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResolution(country, info))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path holding .taxkraft.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the resolved strategy as JSON")

	return cmd
}
