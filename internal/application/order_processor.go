package application

import (
	"log/slog"

	"github.com/abdidvp/taxkraft/internal/domain"
)

// ProcessorOption configures an OrderProcessor.
type ProcessorOption func(*OrderProcessor)

// WithProcessorLogger sets the logger used for resolution diagnostics.
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *OrderProcessor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithProcessorMetrics records processed and unresolved orders.
func WithProcessorMetrics(metrics domain.ProcessMetrics) ProcessorOption {
	return func(p *OrderProcessor) {
		p.metrics = metrics
	}
}

// OrderProcessor applies the resolved tax strategy to an order:
// resolve strategy -> calculate tax -> write order.Tax.
type OrderProcessor struct {
	resolver domain.StrategyResolver
	logger   *slog.Logger
	metrics  domain.ProcessMetrics
}

func NewOrderProcessor(resolver domain.StrategyResolver, opts ...ProcessorOption) *OrderProcessor {
	p := &OrderProcessor{
		resolver: resolver,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process writes the tax for order. When no strategy applies the
// resolver's error is returned as is and order is left untouched.
func (p *OrderProcessor) Process(order *domain.Order) error {
	_, err := p.ProcessWithStrategy(order)
	return err
}

// ProcessWithStrategy is Process, also returning the strategy applied.
func (p *OrderProcessor) ProcessWithStrategy(order *domain.Order) (domain.TaxStrategy, error) {
	if order == nil {
		return nil, domain.ErrNilOrder
	}

	strategy, err := p.resolver.GetStrategy(*order)
	if err != nil {
		p.logger.Warn("no tax strategy resolved", "country", order.Country, "error", err)
		if p.metrics != nil {
			p.metrics.ObserveUnresolved(order.Country)
		}
		return nil, err
	}

	tax := strategy.CalcTax(*order)
	order.Tax = tax

	p.logger.Debug("tax applied", "country", order.Country, "strategy", strategy.Name(), "tax", tax.String())
	if p.metrics != nil {
		p.metrics.ObserveProcessed(strategy.Name())
	}
	return strategy, nil
}
