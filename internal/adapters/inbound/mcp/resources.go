package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/metrics"
	"github.com/abdidvp/taxkraft/internal/application"
)

const strategyURIPrefix = "taxkraft://strategies/"

// registerResources registers all taxkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.TaxService, recorder *metrics.Recorder, projectPath string) {
	// 1. taxkraft://config - effective configuration
	s.AddResource(
		mcplib.NewResource(
			"taxkraft://config",
			"Configuration",
			mcplib.WithResourceDescription("Effective .taxkraft.yaml configuration, defaults applied"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(svc, projectPath),
	)

	// 2. taxkraft://metrics - counters for this server session
	s.AddResource(
		mcplib.NewResource(
			"taxkraft://metrics",
			"Metrics",
			mcplib.WithResourceDescription("Prometheus counters of orders processed and unresolved by this server"),
			mcplib.WithMIMEType("text/plain"),
		),
		handleMetricsResource(recorder),
	)

	// 3. taxkraft://strategies/{country} - resolution for a country (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			strategyURIPrefix+"{country}",
			"Strategy Resolution",
			mcplib.WithTemplateDescription("The strategy applied to orders for a specific country"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleStrategyResource(svc, projectPath),
	)
}

func handleConfigResource(svc *application.TaxService, projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := svc.Config(projectPath)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "taxkraft://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleMetricsResource(recorder *metrics.Recorder) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		var buf bytes.Buffer
		if err := recorder.WriteText(&buf); err != nil {
			return nil, err
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "taxkraft://metrics",
				MIMEType: "text/plain",
				Text:     buf.String(),
			},
		}, nil
	}
}

func handleStrategyResource(svc *application.TaxService, projectPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		country := templateArg(request, "country", strategyURIPrefix)
		if country == "" {
			return nil, fmt.Errorf("country is required")
		}

		info, err := svc.Resolve(projectPath, country)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling strategy: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

// templateArg reads a URI template variable. Template matching may store
// the value as a string or a []string; the URI itself is the fallback.
func templateArg(request mcplib.ReadResourceRequest, name, prefix string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return strings.TrimPrefix(request.Params.URI, prefix)
}
