package application

import (
	"errors"
	"fmt"

	"github.com/abdidvp/taxkraft/internal/domain"
)

var (
	// ErrNilStrategy is returned when registering a nil strategy.
	ErrNilStrategy = errors.New("strategy is nil")
	// ErrDuplicateStrategy is returned when a name is registered twice.
	ErrDuplicateStrategy = errors.New("strategy already registered")
	// ErrUnknownStrategy is returned when composing from a name the
	// catalog does not hold.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// StrategyCatalog holds named strategies in registration order. It is a
// composition-time helper: processors never see it, only the factory
// built from it.
type StrategyCatalog struct {
	order  []string
	byName map[string]domain.TaxStrategy
}

func NewStrategyCatalog() *StrategyCatalog {
	return &StrategyCatalog{byName: make(map[string]domain.TaxStrategy)}
}

// DefaultCatalog holds the built-in strategies, US first.
func DefaultCatalog() *StrategyCatalog {
	c := NewStrategyCatalog()
	_ = c.Register(domain.USTaxStrategy{})
	_ = c.Register(domain.CanadaTaxStrategy{})
	return c
}

// Register adds s under s.Name().
func (c *StrategyCatalog) Register(s domain.TaxStrategy) error {
	if s == nil {
		return ErrNilStrategy
	}
	name := s.Name()
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStrategy, name)
	}
	c.byName[name] = s
	c.order = append(c.order, name)
	return nil
}

func (c *StrategyCatalog) Lookup(name string) (domain.TaxStrategy, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// All returns every registered strategy in registration order.
func (c *StrategyCatalog) All() []domain.TaxStrategy {
	out := make([]domain.TaxStrategy, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

func (c *StrategyCatalog) Names() []string {
	return append([]string(nil), c.order...)
}
