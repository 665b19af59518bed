package application

import (
	"fmt"

	"github.com/abdidvp/taxkraft/internal/domain"
)

// ComposeAll builds a factory over every catalog strategy, in
// registration order.
func ComposeAll(catalog *StrategyCatalog) *domain.TaxStrategyFactory {
	return domain.NewTaxStrategyFactory(catalog.All()...)
}

// ComposeNamed builds a factory over the named catalog strategies. The
// order of names is the resolution order.
func ComposeNamed(catalog *StrategyCatalog, names ...string) (*domain.TaxStrategyFactory, error) {
	strategies := make([]domain.TaxStrategy, 0, len(names))
	for _, name := range names {
		s, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, name, catalog.Names())
		}
		strategies = append(strategies, s)
	}
	return domain.NewTaxStrategyFactory(strategies...), nil
}

// ComposeFromConfig builds the factory described by cfg. Built-in entries
// are looked up in catalog; custom entries become FixedAmountStrategy.
// cfg must already be validated.
func ComposeFromConfig(cfg domain.TaxConfig, catalog *StrategyCatalog) (*domain.TaxStrategyFactory, error) {
	strategies := make([]domain.TaxStrategy, 0, len(cfg.Strategies))
	for _, sc := range cfg.Strategies {
		if s, ok := catalog.Lookup(sc.Name); ok && len(sc.Countries) == 0 {
			strategies = append(strategies, s)
			continue
		}
		if len(sc.Countries) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, sc.Name)
		}
		amount, err := sc.AmountDecimal()
		if err != nil {
			return nil, fmt.Errorf("strategy %q: parsing amount: %w", sc.Name, err)
		}
		strategies = append(strategies, domain.NewFixedAmountStrategy(sc.Name, amount, sc.Countries...))
	}
	return domain.NewTaxStrategyFactory(strategies...), nil
}
