package domain

// StrategyResolver picks the strategy that applies to an order.
type StrategyResolver interface {
	GetStrategy(order Order) (TaxStrategy, error)
}

// ConfigLoader reads the tax configuration for a project directory.
type ConfigLoader interface {
	Load(projectPath string) (TaxConfig, error)
}

// ReceiptLedger persists processed-order receipts for a project.
type ReceiptLedger interface {
	Save(projectPath string, receipt Receipt) error
	Load(projectPath string) ([]Receipt, error)
}

// RevisionInfo identifies the revision of the project holding the tax table.
type RevisionInfo interface {
	CommitHash(projectPath string) (string, error)
}

// ProcessMetrics observes processing outcomes.
type ProcessMetrics interface {
	ObserveProcessed(strategy string)
	ObserveUnresolved(country string)
}
