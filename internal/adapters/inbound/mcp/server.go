package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/taxkraft/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/taxkraft/internal/adapters/outbound/history"
	"github.com/abdidvp/taxkraft/internal/adapters/outbound/metrics"
	"github.com/abdidvp/taxkraft/internal/application"
)

// NewTaxkraftMCPServer creates a new MCP server with all taxkraft tools and
// resources registered. The projectPath is the directory holding
// .taxkraft.yaml and the receipt ledger.
func NewTaxkraftMCPServer(projectPath string, opts ...application.ServiceOption) *server.MCPServer {
	s := server.NewMCPServer(
		"taxkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	recorder := metrics.New()
	svc := application.NewTaxService(
		config.New(),
		history.New(),
		gitinfo.New(),
		recorder,
		opts...,
	)

	registerTools(s, svc, projectPath)
	registerResources(s, svc, recorder, projectPath)

	return s
}
