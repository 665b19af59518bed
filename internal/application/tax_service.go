package application

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/google/uuid"
)

// ServiceOption configures a TaxService.
type ServiceOption func(*TaxService)

// WithLogger sets the service logger. It is handed down to processors.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *TaxService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCatalog replaces the built-in strategy catalog.
func WithCatalog(catalog *StrategyCatalog) ServiceOption {
	return func(s *TaxService) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithClock overrides the time source used to stamp receipts.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *TaxService) {
		if now != nil {
			s.now = now
		}
	}
}

// TaxService orchestrates a tax calculation for a project:
// load config -> compose registry -> process order -> stamp receipt -> record.
type TaxService struct {
	configLoader domain.ConfigLoader
	ledger       domain.ReceiptLedger
	revision     domain.RevisionInfo
	metrics      domain.ProcessMetrics
	catalog      *StrategyCatalog
	logger       *slog.Logger
	now          func() time.Time
}

// NewTaxService wires the service. ledger, revision and metrics may be nil.
func NewTaxService(
	configLoader domain.ConfigLoader,
	ledger domain.ReceiptLedger,
	revision domain.RevisionInfo,
	metrics domain.ProcessMetrics,
	opts ...ServiceOption,
) *TaxService {
	s := &TaxService{
		configLoader: configLoader,
		ledger:       ledger,
		revision:     revision,
		metrics:      metrics,
		catalog:      DefaultCatalog(),
		logger:       slog.New(slog.DiscardHandler),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the effective configuration for projectPath.
func (s *TaxService) Config(projectPath string) (domain.TaxConfig, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.TaxConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (s *TaxService) factory(projectPath string) (domain.TaxConfig, *domain.TaxStrategyFactory, error) {
	cfg, err := s.Config(projectPath)
	if err != nil {
		return domain.TaxConfig{}, nil, err
	}
	f, err := ComposeFromConfig(cfg, s.catalog)
	if err != nil {
		return domain.TaxConfig{}, nil, fmt.Errorf("composing strategies: %w", err)
	}
	return cfg, f, nil
}

// Calculate processes an order for country and returns its receipt
// without recording it.
func (s *TaxService) Calculate(projectPath, country string) (*domain.Receipt, error) {
	_, f, err := s.factory(projectPath)
	if err != nil {
		return nil, err
	}
	return s.calculate(projectPath, f, country)
}

// CalculateAndRecord is Calculate followed by Record, unless the ledger
// is disabled in config.
func (s *TaxService) CalculateAndRecord(projectPath, country string) (*domain.Receipt, error) {
	cfg, f, err := s.factory(projectPath)
	if err != nil {
		return nil, err
	}
	receipt, err := s.calculate(projectPath, f, country)
	if err != nil {
		return nil, err
	}
	if cfg.Ledger.Disabled {
		return receipt, nil
	}
	if err := s.Record(projectPath, *receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *TaxService) calculate(projectPath string, f *domain.TaxStrategyFactory, country string) (*domain.Receipt, error) {
	proc := NewOrderProcessor(f,
		WithProcessorLogger(s.logger),
		WithProcessorMetrics(s.metrics),
	)

	order := &domain.Order{Country: country}
	strategy, err := proc.ProcessWithStrategy(order)
	if err != nil {
		return nil, fmt.Errorf("processing order: %w", err)
	}

	receipt := &domain.Receipt{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Country:   order.Country,
		Strategy:  strategy.Name(),
		Tax:       order.Tax,
	}
	if s.revision != nil {
		if hash, err := s.revision.CommitHash(projectPath); err == nil {
			receipt.Revision = hash
		} else {
			s.logger.Debug("no revision for receipt", "path", projectPath, "error", err)
		}
	}
	return receipt, nil
}

// Record appends receipt to the project's ledger.
func (s *TaxService) Record(projectPath string, receipt domain.Receipt) error {
	if s.ledger == nil {
		return nil
	}
	if err := s.ledger.Save(projectPath, receipt); err != nil {
		return fmt.Errorf("recording receipt: %w", err)
	}
	s.logger.Debug("receipt recorded", "id", receipt.ID, "country", receipt.Country, "tax", receipt.Tax.String())
	return nil
}

// History returns every recorded receipt, oldest first.
func (s *TaxService) History(projectPath string) ([]domain.Receipt, error) {
	if s.ledger == nil {
		return nil, nil
	}
	receipts, err := s.ledger.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return receipts, nil
}

// Strategies lists the configured registry in precedence order.
func (s *TaxService) Strategies(projectPath string) ([]domain.StrategyInfo, error) {
	_, f, err := s.factory(projectPath)
	if err != nil {
		return nil, err
	}
	return f.Describe(), nil
}

// Resolve reports which strategy would be applied to an order for country.
func (s *TaxService) Resolve(projectPath, country string) (*domain.StrategyInfo, error) {
	_, f, err := s.factory(projectPath)
	if err != nil {
		return nil, err
	}
	strategy, err := f.GetStrategy(domain.Order{Country: country})
	if err != nil {
		return nil, err
	}
	for _, info := range f.Describe() {
		if info.Name == strategy.Name() {
			return &info, nil
		}
	}
	info := domain.DescribeStrategy(0, strategy)
	return &info, nil
}
