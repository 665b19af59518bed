package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoApplicableStrategy matches (via errors.Is) every failure to
	// find a strategy for an order.
	ErrNoApplicableStrategy = errors.New("no suitable tax strategy was found")
	// ErrRegistryExhausted is the underlying lookup failure: the whole
	// registry was scanned without a match.
	ErrRegistryExhausted = errors.New("registry exhausted without a match")
	// ErrNilOrder is returned when a nil *Order is passed to a processor.
	ErrNilOrder = errors.New("order is nil")
)

// NoApplicableStrategyError reports that no registered strategy accepted
// the order's country. Cause carries the lookup failure.
type NoApplicableStrategyError struct {
	Country string
	Cause   error
}

func (e *NoApplicableStrategyError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s for country %q", ErrNoApplicableStrategy, e.Country)
	}
	return fmt.Sprintf("%s for country %q: %v", ErrNoApplicableStrategy, e.Country, e.Cause)
}

func (e *NoApplicableStrategyError) Unwrap() error { return e.Cause }

func (e *NoApplicableStrategyError) Is(target error) bool {
	return target == ErrNoApplicableStrategy
}
