package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// rootFlags carries persistent flags down to subcommands.
type rootFlags struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "taxkraft",
		Short: "Apply per-country tax strategies to orders",
		Long:  "taxkraft resolves the first applicable tax strategy for an order's country, sets the tax and keeps a ledger of receipts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newProcessCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newStrategiesCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
