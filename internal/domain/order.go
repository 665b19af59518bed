package domain

import "github.com/shopspring/decimal"

// Order is the unit of work handed to an OrderProcessor. Tax stays zero
// until a processor has resolved a strategy for Country and applied it.
type Order struct {
	Country string          `json:"country"`
	Tax     decimal.Decimal `json:"tax"`
}

// TaxSet reports whether a non-zero tax has been written to the order.
func (o Order) TaxSet() bool {
	return !o.Tax.IsZero()
}
