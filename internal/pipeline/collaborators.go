package pipeline

import (
	"github.com/moneythumb/moneythumb/internal/analyze"
	"github.com/moneythumb/moneythumb/internal/model"
)

// The default collaborators delegate to the analyze package.

type analyzePositions struct{}

func (analyzePositions) Detect(txns []model.Transaction) []model.MCAPosition {
	return analyze.DetectPositions(txns)
}

type analyzeMonthly struct{}

func (analyzeMonthly) Summarize(txns []model.Transaction) []model.MonthlyStats {
	return analyze.MonthlySummaries(txns)
}

type analyzeMetrics struct{}

func (analyzeMetrics) Compute(months []model.MonthlyStats, txns []model.Transaction, positions []model.MCAPosition) model.MetricsDraft {
	return analyze.ComputeMetrics(months, txns, positions)
}

type analyzeCashFlow struct{}

func (analyzeCashFlow) Aggregate(months []model.MonthlyStats, positions []model.MCAPosition) model.CashFlowMetrics {
	return analyze.AggregateCashFlow(months, positions)
}
