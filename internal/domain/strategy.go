package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// TaxStrategy is one tax policy. Strategies follow the tester-doer split:
// callers ask IsApplicable first and only then call CalcTax. CalcTax does
// not re-check applicability.
type TaxStrategy interface {
	Name() string
	IsApplicable(order Order) bool
	CalcTax(order Order) decimal.Decimal
}

// CountryClaimer is implemented by strategies that can list the country
// codes they apply to.
type CountryClaimer interface {
	Countries() []string
}

const (
	USTaxStrategyName     = "USTaxStrategy"
	CanadaTaxStrategyName = "CanadaTaxStrategy"
)

var (
	usTaxAmount     = decimal.NewFromInt(10)
	canadaTaxAmount = decimal.NewFromInt(5)
)

// USTaxStrategy charges a flat 10 on orders shipped to "US".
type USTaxStrategy struct{}

func (USTaxStrategy) Name() string { return USTaxStrategyName }

func (USTaxStrategy) IsApplicable(order Order) bool { return order.Country == "US" }

func (USTaxStrategy) CalcTax(Order) decimal.Decimal { return usTaxAmount }

func (USTaxStrategy) Countries() []string { return []string{"US"} }

// CanadaTaxStrategy charges a flat 5 on orders shipped to "CA".
type CanadaTaxStrategy struct{}

func (CanadaTaxStrategy) Name() string { return CanadaTaxStrategyName }

func (CanadaTaxStrategy) IsApplicable(order Order) bool { return order.Country == "CA" }

func (CanadaTaxStrategy) CalcTax(Order) decimal.Decimal { return canadaTaxAmount }

func (CanadaTaxStrategy) Countries() []string { return []string{"CA"} }

// FixedAmountStrategy applies the same Amount to every order whose country
// is listed in Codes. It backs strategies declared in .taxkraft.yaml.
type FixedAmountStrategy struct {
	Label  string
	Codes  []string
	Amount decimal.Decimal
}

func NewFixedAmountStrategy(label string, amount decimal.Decimal, codes ...string) *FixedAmountStrategy {
	return &FixedAmountStrategy{
		Label:  label,
		Codes:  slices.Clone(codes),
		Amount: amount,
	}
}

func (s *FixedAmountStrategy) Name() string { return s.Label }

func (s *FixedAmountStrategy) IsApplicable(order Order) bool {
	return slices.Contains(s.Codes, order.Country)
}

func (s *FixedAmountStrategy) CalcTax(Order) decimal.Decimal { return s.Amount }

func (s *FixedAmountStrategy) Countries() []string { return slices.Clone(s.Codes) }

var (
	_ TaxStrategy    = USTaxStrategy{}
	_ TaxStrategy    = CanadaTaxStrategy{}
	_ TaxStrategy    = (*FixedAmountStrategy)(nil)
	_ CountryClaimer = (*FixedAmountStrategy)(nil)
)

// StrategyInfo is a read-only description of a registered strategy,
// used for listings and resolution reports.
type StrategyInfo struct {
	Position  int             `json:"position"`
	Name      string          `json:"name"`
	Countries []string        `json:"countries,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

// DescribeStrategy builds a StrategyInfo for s at the given registry
// position. Amount is what s charges an order for its first claimed
// country, or the zero-country charge when s claims none.
func DescribeStrategy(position int, s TaxStrategy) StrategyInfo {
	info := StrategyInfo{Position: position, Name: s.Name()}
	sample := Order{}
	if c, ok := s.(CountryClaimer); ok {
		info.Countries = c.Countries()
		if len(info.Countries) > 0 {
			sample.Country = info.Countries[0]
		}
	}
	info.Amount = s.CalcTax(sample)
	return info
}
