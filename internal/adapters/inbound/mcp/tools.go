package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/abdidvp/taxkraft/internal/application"
	"github.com/abdidvp/taxkraft/internal/domain"
)

// registerTools registers all taxkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.TaxService, projectPath string) {
	// 1. taxkraft_process
	s.AddTool(
		mcplib.NewTool("taxkraft_process",
			mcplib.WithDescription("Process an order for a country: applies the first applicable tax strategy and returns the receipt as JSON"),
			mcplib.WithString("country",
				mcplib.Required(),
				mcplib.Description("Country code of the order, e.g. US or CA"),
			),
			mcplib.WithBoolean("record", mcplib.Description("Append the receipt to the ledger (default: true)")),
		),
		handleProcess(svc, projectPath),
	)

	// 2. taxkraft_resolve
	s.AddTool(
		mcplib.NewTool("taxkraft_resolve",
			mcplib.WithDescription("Returns the strategy an order for the country would be taxed with, without processing it"),
			mcplib.WithString("country",
				mcplib.Required(),
				mcplib.Description("Country code to resolve"),
			),
		),
		handleResolve(svc, projectPath),
	)

	// 3. taxkraft_list_strategies
	s.AddTool(
		mcplib.NewTool("taxkraft_list_strategies",
			mcplib.WithDescription("Lists the configured tax strategies in precedence order (first match wins)"),
		),
		handleListStrategies(svc, projectPath),
	)

	// 4. taxkraft_history
	s.AddTool(
		mcplib.NewTool("taxkraft_history",
			mcplib.WithDescription("Returns the recorded receipts, oldest first, with the total tax"),
		),
		handleHistory(svc, projectPath),
	)
}

func handleProcess(svc *application.TaxService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		country, err := request.RequireString("country")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		calculate := svc.CalculateAndRecord
		if record, ok := request.GetArguments()["record"].(bool); ok && !record {
			calculate = svc.Calculate
		}

		receipt, err := calculate(projectPath, country)
		if err != nil {
			return errorResult(fmt.Sprintf("process failed: %v", err)), nil
		}
		return jsonResult(receipt)
	}
}

func handleResolve(svc *application.TaxService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		country, err := request.RequireString("country")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		info, err := svc.Resolve(projectPath, country)
		if err != nil {
			if errors.Is(err, domain.ErrNoApplicableStrategy) {
				return errorResult(err.Error()), nil
			}
			return errorResult(fmt.Sprintf("resolve failed: %v", err)), nil
		}
		return jsonResult(info)
	}
}

func handleListStrategies(svc *application.TaxService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		infos, err := svc.Strategies(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("listing strategies failed: %v", err)), nil
		}
		return jsonResult(infos)
	}
}

type historyResult struct {
	Receipts []domain.Receipt `json:"receipts"`
	Total    decimal.Decimal  `json:"total"`
}

func handleHistory(svc *application.TaxService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		receipts, err := svc.History(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history failed: %v", err)), nil
		}
		if receipts == nil {
			receipts = []domain.Receipt{}
		}
		return jsonResult(historyResult{Receipts: receipts, Total: domain.TotalTax(receipts)})
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
