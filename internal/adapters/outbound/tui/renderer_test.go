package tui_test

import (
	"testing"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleReceipt() *domain.Receipt {
	return &domain.Receipt{
		ID:        "3f0c1f5e-2a7b-4d7e-8d0b-6a1f4c9e2b11",
		Timestamp: "2026-10-19T09:30:00Z",
		Country:   "US",
		Strategy:  "USTaxStrategy",
		Tax:       decimal.NewFromInt(10),
		Revision:  "0123456789abcdef0123456789abcdef01234567",
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "US Tax Strategy", tui.Label("USTaxStrategy"))
	assert.Equal(t, "Canada Tax Strategy", tui.Label("CanadaTaxStrategy"))
	assert.Equal(t, "mexico", tui.Label("mexico"))
	assert.Equal(t, "north-america", tui.Label("north-america"))
	assert.Equal(t, "", tui.Label(""))
}

func TestRenderReceipt(t *testing.T) {
	out := tui.RenderReceipt(sampleReceipt())
	assert.Contains(t, out, "taxkraft")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "US Tax Strategy")
	assert.Contains(t, out, "0123456")
	assert.NotContains(t, out, "0123456789abcdef", "revision is shortened")
	assert.Contains(t, out, "2026-10-19T09:30:00Z")
}

func TestRenderReceipt_WithoutRevision(t *testing.T) {
	r := sampleReceipt()
	r.Revision = ""
	out := tui.RenderReceipt(r)
	assert.NotContains(t, out, "Revision")
}

func TestRenderUnresolved(t *testing.T) {
	err := &domain.NoApplicableStrategyError{Country: "MX"}
	out := tui.RenderUnresolved("MX", err)
	assert.Contains(t, out, `No tax strategy for "MX"`)
	assert.Contains(t, out, "no suitable tax strategy was found")
}

func TestRenderStrategies(t *testing.T) {
	infos := []domain.StrategyInfo{
		{Position: 1, Name: "USTaxStrategy", Countries: []string{"US"}, Amount: decimal.NewFromInt(10)},
		{Position: 2, Name: "CanadaTaxStrategy", Countries: []string{"CA"}, Amount: decimal.NewFromInt(5)},
		{Position: 3, Name: "latam", Countries: []string{"MX", "GT"}, Amount: decimal.RequireFromString("16.5")},
	}
	out := tui.RenderStrategies(infos)
	assert.Contains(t, out, "first match wins")
	assert.Contains(t, out, "US Tax Strategy")
	assert.Contains(t, out, "Canada Tax Strategy")
	assert.Contains(t, out, "MX, GT")
	assert.Contains(t, out, "16.5")
	assert.Less(t, indexOf(out, "US Tax Strategy"), indexOf(out, "Canada Tax Strategy"), "listed in precedence order")
}

func TestRenderStrategies_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderStrategies(nil), "No strategies registered.")
}

func TestRenderResolution(t *testing.T) {
	info := &domain.StrategyInfo{Position: 2, Name: "CanadaTaxStrategy", Countries: []string{"CA"}, Amount: decimal.NewFromInt(5)}
	out := tui.RenderResolution("CA", info)
	assert.Contains(t, out, "resolves to")
	assert.Contains(t, out, "Canada Tax Strategy")
	assert.Contains(t, out, "2.")
}

func TestRenderHistory(t *testing.T) {
	receipts := []domain.Receipt{
		*sampleReceipt(),
		{Timestamp: "2026-10-20T11:00:00Z", Country: "CA", Strategy: "CanadaTaxStrategy", Tax: decimal.NewFromInt(5)},
	}
	out := tui.RenderHistory(receipts)
	assert.Contains(t, out, "Receipt Ledger")
	assert.Contains(t, out, "2026-10-19")
	assert.Contains(t, out, "2026-10-20")
	assert.Contains(t, out, "(2 receipts)")
	assert.Contains(t, out, "15")
}

func TestRenderHistory_ShortTimestamp(t *testing.T) {
	out := tui.RenderHistory([]domain.Receipt{{Timestamp: "t1", Country: "US", Tax: decimal.NewFromInt(10)}})
	assert.Contains(t, out, "t1")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No receipts recorded.")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
