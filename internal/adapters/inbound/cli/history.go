package cli

import (
	"fmt"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/history"
	"github.com/abdidvp/taxkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type historyOutput struct {
	Receipts []domain.Receipt `json:"receipts"`
	Total    decimal.Decimal  `json:"total"`
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
		clearLedger bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded tax receipts",
		Long:  "Show the project's receipt ledger, oldest first, with the total tax collected.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := absProjectPath(projectPath)
			if err != nil {
				return err
			}

			if clearLedger {
				if err := history.New().Clear(absPath); err != nil {
					return fmt.Errorf("clearing ledger: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Ledger cleared")
				return nil
			}

			svc := newTaxService(cmd, flags, absPath, nil)
			receipts, err := svc.History(absPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				if receipts == nil {
					receipts = []domain.Receipt{}
				}
				return renderJSON(cmd, historyOutput{Receipts: receipts, Total: domain.TotalTax(receipts)})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(receipts))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path holding the ledger")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output receipts as JSON")
	cmd.Flags().BoolVar(&clearLedger, "clear", false, "Remove every recorded receipt")

	return cmd
}
