package domain

import (
	"fmt"
	"slices"
)

// TaxStrategyFactory resolves the strategy for an order from a fixed,
// ordered registry. The registry is copied at construction and never
// mutated afterwards, so concurrent GetStrategy calls need no locking.
type TaxStrategyFactory struct {
	strategies []TaxStrategy
}

// NewTaxStrategyFactory builds a factory over strategies in the given
// order. Nil entries are dropped.
func NewTaxStrategyFactory(strategies ...TaxStrategy) *TaxStrategyFactory {
	out := make([]TaxStrategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &TaxStrategyFactory{strategies: out}
}

var _ StrategyResolver = (*TaxStrategyFactory)(nil)

// GetStrategy returns the first registered strategy applicable to order.
// Earlier registrations win when several strategies apply.
func (f *TaxStrategyFactory) GetStrategy(order Order) (TaxStrategy, error) {
	for _, s := range f.strategies {
		if s.IsApplicable(order) {
			return s, nil
		}
	}
	return nil, &NoApplicableStrategyError{
		Country: order.Country,
		Cause:   fmt.Errorf("%w: scanned %d strategies", ErrRegistryExhausted, len(f.strategies)),
	}
}

// Strategies returns the registry in precedence order.
func (f *TaxStrategyFactory) Strategies() []TaxStrategy {
	return slices.Clone(f.strategies)
}

func (f *TaxStrategyFactory) Len() int { return len(f.strategies) }

// Describe lists the registry as StrategyInfo, positions starting at 1.
func (f *TaxStrategyFactory) Describe() []StrategyInfo {
	infos := make([]StrategyInfo, 0, len(f.strategies))
	for i, s := range f.strategies {
		infos = append(infos, DescribeStrategy(i+1, s))
	}
	return infos
}
