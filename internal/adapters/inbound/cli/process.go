package cli

import (
	"errors"
	"fmt"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/metrics"
	"github.com/abdidvp/taxkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/spf13/cobra"
)

func newProcessCmd(flags *rootFlags) *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
		showMetrics bool
		noRecord    bool
	)

	cmd := &cobra.Command{
		Use:   "process <country>",
		Short: "Calculate the tax for an order",
		Long:  "Process an order for the given country code with the first applicable strategy and record a receipt in the project ledger.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			country := args[0]

			absPath, err := absProjectPath(projectPath)
			if err != nil {
				return err
			}

			recorder := metrics.New()
			svc := newTaxService(cmd, flags, absPath, recorder)

			calculate := svc.CalculateAndRecord
			if noRecord {
				calculate = svc.Calculate
			}

			receipt, err := calculate(absPath, country)
			if err != nil {
				var unresolved *domain.NoApplicableStrategyError
				if errors.As(err, &unresolved) && !jsonOutput {
					fmt.Fprint(cmd.ErrOrStderr(), tui.RenderUnresolved(country, unresolved))
				}
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, receipt); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReceipt(receipt))
			}

			if showMetrics {
				return recorder.WriteText(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path holding .taxkraft.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the receipt as JSON")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print Prometheus metrics after processing")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not append the receipt to the ledger")

	return cmd
}
