package domain

import "github.com/shopspring/decimal"

// Receipt records one processed order: which strategy ran and what it
// charged. Revision is the commit of the tax table, when known.
type Receipt struct {
	ID        string          `json:"id"`
	Timestamp string          `json:"timestamp"`
	Country   string          `json:"country"`
	Strategy  string          `json:"strategy"`
	Tax       decimal.Decimal `json:"tax"`
	Revision  string          `json:"revision,omitempty"`
}

// TotalTax sums the tax across receipts.
func TotalTax(receipts []Receipt) decimal.Decimal {
	total := decimal.Zero
	for _, r := range receipts {
		total = total.Add(r.Tax)
	}
	return total
}
