package mcp_test

import (
	"testing"

	mcpadapter "github.com/abdidvp/taxkraft/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaxkraftMCPServer(t *testing.T) {
	s := mcpadapter.NewTaxkraftMCPServer(t.TempDir())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewTaxkraftMCPServer(t.TempDir())
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"taxkraft_process",
		"taxkraft_resolve",
		"taxkraft_list_strategies",
		"taxkraft_history",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
