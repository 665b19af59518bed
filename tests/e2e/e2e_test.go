package e2e_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "taxkraft-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "taxkraft")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/taxkraft")
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func fixturePath() string {
	abs, _ := filepath.Abs("../../testdata/project")
	return abs
}

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// --- Process Tests ---

func TestE2E_ProcessUS(t *testing.T) {
	out, _, code := run(t, "process", "US", "--path", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "taxkraft")
	assert.Contains(t, out, "10")
}

func TestE2E_ProcessJSON(t *testing.T) {
	out, _, code := run(t, "process", "CA", "--path", t.TempDir(), "--json")
	require.Equal(t, 0, code)

	var receipt domain.Receipt
	require.NoError(t, json.Unmarshal([]byte(out), &receipt))
	assert.Equal(t, "CA", receipt.Country)
	assert.Equal(t, "5", receipt.Tax.String())
	assert.Len(t, receipt.ID, 36, "receipt IDs are UUIDs")
}

func TestE2E_ProcessUnresolvedExitsNonZero(t *testing.T) {
	out, errOut, code := run(t, "process", "MX", "--path", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no suitable tax strategy was found")
}

func TestE2E_ProcessCustomStrategy(t *testing.T) {
	out, _, code := run(t, "process", "MX", "--path", fixturePath(), "--json", "--no-record")
	require.Equal(t, 0, code)

	var receipt domain.Receipt
	require.NoError(t, json.Unmarshal([]byte(out), &receipt))
	assert.Equal(t, "mexico", receipt.Strategy)
	assert.Equal(t, "16", receipt.Tax.String())
}

// --- Ledger Tests ---

func TestE2E_HistoryAccumulates(t *testing.T) {
	dir := t.TempDir()
	for _, country := range []string{"US", "US", "CA"} {
		_, _, code := run(t, "process", country, "--path", dir)
		require.Equal(t, 0, code)
	}

	out, _, code := run(t, "history", "--path", dir, "--json")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"total": "25"`)
}

func TestE2E_LedgerDisabled(t *testing.T) {
	dir := t.TempDir()
	cfg := "strategies:\n  - name: USTaxStrategy\nledger:\n  disabled: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".taxkraft.yaml"), []byte(cfg), 0644))

	_, _, code := run(t, "process", "US", "--path", dir)
	require.Equal(t, 0, code)

	_, err := os.Stat(filepath.Join(dir, ".taxkraft"))
	assert.True(t, os.IsNotExist(err), "no ledger directory when disabled")
}

// --- Registry Tests ---

func TestE2E_Strategies(t *testing.T) {
	out, _, code := run(t, "strategies", "--path", fixturePath())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "US Tax Strategy")
	assert.Contains(t, out, "mexico")
}

func TestE2E_ResolveRespectsOrder(t *testing.T) {
	dir := t.TempDir()
	cfg := "strategies:\n  - name: flat\n    countries: [US]\n    amount: \"3\"\n  - name: USTaxStrategy\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".taxkraft.yaml"), []byte(cfg), 0644))

	out, _, code := run(t, "resolve", "US", "--path", dir, "--json")
	require.Equal(t, 0, code)

	var info domain.StrategyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "flat", info.Name, "earliest registered strategy wins")
}

// --- Init Tests ---

func TestE2E_InitThenProcess(t *testing.T) {
	dir := t.TempDir()
	_, _, code := run(t, "init", dir, "--strategies", "CanadaTaxStrategy")
	require.Equal(t, 0, code)

	_, _, code = run(t, "process", "CA", "--path", dir, "--no-record")
	assert.Equal(t, 0, code)
	_, _, code = run(t, "process", "US", "--path", dir, "--no-record")
	assert.Equal(t, 1, code, "US is not registered")
}

// --- MCP Tests ---

func TestE2E_MCPServeHelp(t *testing.T) {
	out, _, code := run(t, "mcp", "serve", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "stdio")
}

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "taxkraft")
}
