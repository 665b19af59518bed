package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// BuiltinStrategyNames enumerates strategies that ship with taxkraft and
// can be referenced by name alone in .taxkraft.yaml.
var BuiltinStrategyNames = []string{
	USTaxStrategyName,
	CanadaTaxStrategyName,
}

// ValidLogLevels enumerates accepted logging.level values, matched
// case-insensitively.
var ValidLogLevels = []string{"", "debug", "info", "warn", "error"}

// TaxConfig holds project-level configuration loaded from .taxkraft.yaml.
// Strategies are listed in precedence order: the first applicable one wins.
type TaxConfig struct {
	Strategies []StrategyConfig `yaml:"strategies" json:"strategies"`
	Ledger     LedgerConfig     `yaml:"ledger"     json:"ledger"`
	Logging    LoggingConfig    `yaml:"logging"    json:"logging"`
}

// StrategyConfig declares one registry entry. Built-in strategies are
// referenced by Name only; custom ones need Countries and Amount.
type StrategyConfig struct {
	Name      string   `yaml:"name"                json:"name"`
	Countries []string `yaml:"countries,omitempty" json:"countries,omitempty"`
	Amount    string   `yaml:"amount,omitempty"    json:"amount,omitempty"`
}

// LedgerConfig controls receipt recording.
type LedgerConfig struct {
	Disabled bool `yaml:"disabled" json:"disabled,omitempty"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level,omitempty"` // debug, info, warn, error
}

// DefaultConfig returns the reference registry: US first, then Canada.
func DefaultConfig() TaxConfig {
	return TaxConfig{
		Strategies: []StrategyConfig{
			{Name: USTaxStrategyName},
			{Name: CanadaTaxStrategyName},
		},
	}
}

// IsBuiltin reports whether the entry refers to a shipped strategy.
func (s StrategyConfig) IsBuiltin() bool {
	return slices.Contains(BuiltinStrategyNames, s.Name)
}

// AmountDecimal parses Amount.
func (s StrategyConfig) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(s.Amount)
}

// StrategyNames returns the configured names in precedence order.
func (c TaxConfig) StrategyNames() []string {
	names := make([]string, 0, len(c.Strategies))
	for _, s := range c.Strategies {
		names = append(names, s.Name)
	}
	return names
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c TaxConfig) Validate() error {
	if len(c.Strategies) == 0 {
		return fmt.Errorf("strategies must not be empty")
	}

	seen := make(map[string]bool, len(c.Strategies))
	for i, s := range c.Strategies {
		if s.Name == "" {
			return fmt.Errorf("strategies[%d].name must not be empty", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate strategy %q in strategies", s.Name)
		}
		seen[s.Name] = true

		if err := s.validate(i); err != nil {
			return err
		}
	}

	if !slices.Contains(ValidLogLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("unknown logging.level %q (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

func (s StrategyConfig) validate(i int) error {
	if s.IsBuiltin() {
		if len(s.Countries) > 0 || s.Amount != "" {
			return fmt.Errorf("strategies[%d]: built-in strategy %q does not accept countries or amount", i, s.Name)
		}
		return nil
	}

	if len(s.Countries) == 0 {
		return fmt.Errorf("strategies[%d]: custom strategy %q needs at least one country", i, s.Name)
	}
	for j, code := range s.Countries {
		if code == "" {
			return fmt.Errorf("strategies[%d].countries[%d] must not be empty", i, j)
		}
	}

	if s.Amount == "" {
		return fmt.Errorf("strategies[%d]: custom strategy %q needs an amount", i, s.Name)
	}
	amount, err := s.AmountDecimal()
	if err != nil {
		return fmt.Errorf("strategies[%d].amount %q is not a number", i, s.Amount)
	}
	if amount.IsNegative() {
		return fmt.Errorf("strategies[%d].amount must be >= 0 (got %s)", i, s.Amount)
	}
	return nil
}
