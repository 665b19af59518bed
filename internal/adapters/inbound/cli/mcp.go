package cli

import (
	mcpadapter "github.com/abdidvp/taxkraft/internal/adapters/inbound/mcp"
	"github.com/abdidvp/taxkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/taxkraft/internal/application"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the taxkraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(flags))
	return cmd
}

func newMCPServeCmd(flags *rootFlags) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start taxkraft MCP server (stdio)",
		Long:  "Start the taxkraft MCP server using stdio transport. This lets AI assistants process orders, resolve strategies and read the receipt ledger.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := absProjectPath(projectPath)
			if err != nil {
				return err
			}
			// stdout carries the protocol; logs stay on stderr.
			logger := projectLogger(cmd, flags, config.New(), absPath)
			s := mcpadapter.NewTaxkraftMCPServer(absPath, application.WithLogger(logger))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
