package pipeline

import "github.com/moneythumb/moneythumb/internal/model"

// Ingester produces the account identity, raw transactions and extraction
// confidence for a statement source (a file path or raw text handle).
type Ingester interface {
	Ingest(source string) (*model.Statement, error)
}

// IngestFunc adapts a plain function to the Ingester interface.
type IngestFunc func(source string) (*model.Statement, error)

// Ingest calls f.
func (f IngestFunc) Ingest(source string) (*model.Statement, error) { return f(source) }

// PositionDetector finds MCA positions in a classified transaction set.
type PositionDetector interface {
	Detect(txns []model.Transaction) []model.MCAPosition
}

// MonthlyAggregator groups classified transactions into per-month summaries.
type MonthlyAggregator interface {
	Summarize(txns []model.Transaction) []model.MonthlyStats
}

// MetricsCalculator derives the underwriting metrics draft.
type MetricsCalculator interface {
	Compute(months []model.MonthlyStats, txns []model.Transaction, positions []model.MCAPosition) model.MetricsDraft
}

// CashFlowAnalyzer nets the statement's cash movement.
type CashFlowAnalyzer interface {
	Aggregate(months []model.MonthlyStats, positions []model.MCAPosition) model.CashFlowMetrics
}
