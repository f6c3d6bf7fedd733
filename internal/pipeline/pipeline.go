// Package pipeline sequences one statement through ingestion,
// classification, position detection, aggregation, fraud scoring and
// confidence blending, producing a single immutable Response per run.
// Stages run strictly in order; any stage error aborts the run with no
// partial result.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/moneythumb/moneythumb/internal/classify"
	"github.com/moneythumb/moneythumb/internal/fraud"
	"github.com/moneythumb/moneythumb/internal/model"
)

// Confidence adjustments. The two fraud tiers are mutually exclusive;
// everything else is independent and additive.
const (
	fraudHighScore       = 500
	fraudHighPenalty     = 0.3
	fraudElevatedScore   = 200
	fraudElevatedPenalty = 0.1

	thinStatementCount   = 20
	thinStatementPenalty = 0.2

	varietyMinCategories = 3
	varietyBonus         = 0.1
)

// Pipeline processes bank statements. It holds no per-run state; one
// Pipeline may serve concurrent runs.
type Pipeline struct {
	ingester  Ingester
	positions PositionDetector
	monthly   MonthlyAggregator
	metrics   MetricsCalculator
	cashflow  CashFlowAnalyzer
	log       zerolog.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger attaches a logger for per-stage debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithPositionDetector replaces the default MCA detector.
func WithPositionDetector(d PositionDetector) Option {
	return func(p *Pipeline) { p.positions = d }
}

// WithMonthlyAggregator replaces the default monthly aggregator.
func WithMonthlyAggregator(a MonthlyAggregator) Option {
	return func(p *Pipeline) { p.monthly = a }
}

// WithMetricsCalculator replaces the default metrics calculator.
func WithMetricsCalculator(c MetricsCalculator) Option {
	return func(p *Pipeline) { p.metrics = c }
}

// WithCashFlowAnalyzer replaces the default cash-flow analyzer.
func WithCashFlowAnalyzer(a CashFlowAnalyzer) Option {
	return func(p *Pipeline) { p.cashflow = a }
}

// New creates a Pipeline with the default collaborators.
func New(ingester Ingester, opts ...Option) *Pipeline {
	p := &Pipeline{
		ingester:  ingester,
		positions: analyzePositions{},
		monthly:   analyzeMonthly{},
		metrics:   analyzeMetrics{},
		cashflow:  analyzeCashFlow{},
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the full pipeline for one statement source.
func (p *Pipeline) Process(source string) (*model.Response, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := p.log.With().Str("run_id", runID).Str("source", source).Logger()

	// 1. Ingest.
	stmt, err := p.ingester.Ingest(source)
	if err != nil {
		return nil, fmt.Errorf("ingesting statement: %w", err)
	}
	log.Debug().Int("transactions", len(stmt.Transactions)).
		Float64("confidence", stmt.Confidence).Msg("statement ingested")

	// A statement with no transactions is not an error; it terminates in
	// the defined empty result. This is the pipeline's only branch.
	if len(stmt.Transactions) == 0 {
		log.Debug().Msg("empty statement, returning zeroed result")
		return emptyResponse(runID, stmt.Account, time.Since(start)), nil
	}

	// 2. Classify.
	classified := classify.All(stmt.Transactions)
	if verrs := classify.Validate(classified); len(verrs) > 0 {
		return nil, fmt.Errorf("classification defect: %s", verrs[0])
	}

	// 3. Detect MCA positions.
	positions := p.positions.Detect(classified)
	log.Debug().Int("positions", len(positions)).Msg("MCA positions detected")

	// 4. Aggregate monthly.
	months := p.monthly.Summarize(classified)

	// 5. Compute the metrics draft.
	draft := p.metrics.Compute(months, classified, positions)

	// 6. Score fraud and finalize the metrics.
	score, factors := fraud.Score(classified)
	metrics := draft.Finalize(score)
	log.Debug().Int("fraud_score", score).Strs("factors", factors).Msg("fraud scored")

	// 7. Aggregate cash flow.
	cashFlow := p.cashflow.Aggregate(months, positions)

	// 8. Blend the final confidence.
	confidence := blendConfidence(stmt.Confidence, classified, score)

	resp := &model.Response{
		RunID:            runID,
		Account:          stmt.Account,
		Transactions:     classified,
		MonthlySummaries: months,
		MCAPositions:     positions,
		Metrics:          metrics,
		CashFlow:         cashFlow,
		FraudFactors:     factors,
		ConfidenceScore:  confidence,
		ProcessingTime:   time.Since(start),
	}
	log.Debug().Dur("elapsed", resp.ProcessingTime).
		Float64("confidence", confidence).Msg("statement processed")
	return resp, nil
}

// blendConfidence adjusts the extraction confidence for fraud risk,
// statement thinness, and category variety, clamped to [0,1].
func blendConfidence(base float64, txns []model.Transaction, fraudScore int) float64 {
	confidence := base

	switch {
	case fraudScore > fraudHighScore:
		confidence -= fraudHighPenalty
	case fraudScore > fraudElevatedScore:
		confidence -= fraudElevatedPenalty
	}

	if len(txns) < thinStatementCount {
		confidence -= thinStatementPenalty
	}

	seen := make(map[model.Category]bool)
	for _, tx := range txns {
		if tx.Category != "" {
			seen[tx.Category] = true
		}
	}
	if len(seen) >= varietyMinCategories {
		confidence += varietyBonus
	}

	if confidence < 0.0 {
		return 0.0
	}
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}

// emptyResponse is the terminal state for a statement with no transactions:
// zeroed metrics, empty collections, confidence 0.
func emptyResponse(runID string, account model.BankAccount, elapsed time.Duration) *model.Response {
	return &model.Response{
		RunID:          runID,
		Account:        account,
		ProcessingTime: elapsed,
	}
}
