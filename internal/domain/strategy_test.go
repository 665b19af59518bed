package domain_test

import (
	"testing"

	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUSTaxStrategy(t *testing.T) {
	s := domain.USTaxStrategy{}
	assert.Equal(t, "USTaxStrategy", s.Name())
	assert.True(t, s.IsApplicable(domain.Order{Country: "US"}))
	assert.False(t, s.IsApplicable(domain.Order{Country: "CA"}))
	assert.False(t, s.IsApplicable(domain.Order{Country: "us"}), "country match is exact")
	assert.Equal(t, "10", s.CalcTax(domain.Order{Country: "US"}).String())
}

func TestCanadaTaxStrategy(t *testing.T) {
	s := domain.CanadaTaxStrategy{}
	assert.Equal(t, "CanadaTaxStrategy", s.Name())
	assert.True(t, s.IsApplicable(domain.Order{Country: "CA"}))
	assert.False(t, s.IsApplicable(domain.Order{Country: "US"}))
	assert.Equal(t, "5", s.CalcTax(domain.Order{Country: "CA"}).String())
}

func TestCalcTax_DoesNotRevalidate(t *testing.T) {
	// CalcTax trusts the caller to have checked IsApplicable.
	assert.Equal(t, "10", domain.USTaxStrategy{}.CalcTax(domain.Order{Country: "MX"}).String())
	assert.Equal(t, "5", domain.CanadaTaxStrategy{}.CalcTax(domain.Order{}).String())
}

func TestStrategies_DoNotMutateOrder(t *testing.T) {
	order := domain.Order{Country: "US"}
	s := domain.USTaxStrategy{}
	s.IsApplicable(order)
	s.CalcTax(order)
	assert.Equal(t, "US", order.Country)
	assert.False(t, order.TaxSet())
}

func TestFixedAmountStrategy(t *testing.T) {
	codes := []string{"MX", "GT"}
	s := domain.NewFixedAmountStrategy("latam", decimal.RequireFromString("16.5"), codes...)

	assert.Equal(t, "latam", s.Name())
	assert.True(t, s.IsApplicable(domain.Order{Country: "MX"}))
	assert.True(t, s.IsApplicable(domain.Order{Country: "GT"}))
	assert.False(t, s.IsApplicable(domain.Order{Country: "US"}))
	assert.Equal(t, "16.5", s.CalcTax(domain.Order{Country: "MX"}).String())

	codes[0] = "BR"
	assert.True(t, s.IsApplicable(domain.Order{Country: "MX"}), "codes are copied at construction")

	got := s.Countries()
	got[0] = "XX"
	assert.Equal(t, []string{"MX", "GT"}, s.Countries())
}

func TestDescribeStrategy(t *testing.T) {
	info := domain.DescribeStrategy(2, domain.CanadaTaxStrategy{})
	assert.Equal(t, 2, info.Position)
	assert.Equal(t, "CanadaTaxStrategy", info.Name)
	assert.Equal(t, []string{"CA"}, info.Countries)
	assert.Equal(t, "5", info.Amount.String())
}

type opaqueStrategy struct{}

func (opaqueStrategy) Name() string                         { return "opaque" }
func (opaqueStrategy) IsApplicable(domain.Order) bool       { return true }
func (opaqueStrategy) CalcTax(domain.Order) decimal.Decimal { return decimal.NewFromInt(1) }

func TestDescribeStrategy_WithoutCountries(t *testing.T) {
	info := domain.DescribeStrategy(1, opaqueStrategy{})
	assert.Equal(t, "opaque", info.Name)
	assert.Empty(t, info.Countries)
	assert.Equal(t, "1", info.Amount.String())
}

func TestOrder_TaxSet(t *testing.T) {
	assert.False(t, domain.Order{Country: "US"}.TaxSet())
	assert.True(t, domain.Order{Country: "US", Tax: decimal.NewFromInt(10)}.TaxSet())
}
