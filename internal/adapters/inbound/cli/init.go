package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		strategies []string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .taxkraft.yaml configuration file",
		Long:  "Create a .taxkraft.yaml listing the built-in strategies in precedence order.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := absProjectPath(path)
			if err != nil {
				return err
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			if len(strategies) > 0 {
				cfg.Strategies = nil
				for _, name := range strategies {
					if !(domain.StrategyConfig{Name: name}).IsBuiltin() {
						return fmt.Errorf("unknown built-in strategy %q (valid: %v)", name, domain.BuiltinStrategyNames)
					}
					cfg.Strategies = append(cfg.Strategies, domain.StrategyConfig{Name: name})
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.Write(absPath, cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&strategies, "strategies", nil, "Built-in strategies in precedence order (default USTaxStrategy,CanadaTaxStrategy)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .taxkraft.yaml")

	return cmd
}
