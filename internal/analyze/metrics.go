package analyze

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/moneythumb/moneythumb/internal/model"
)

const daysPerMonth = 30

// ComputeMetrics derives the underwriting metrics draft from the monthly
// summaries, classified transactions and detected positions. The fraud
// score is not known yet at this stage; the caller finalizes the draft once
// the scorer has run.
func ComputeMetrics(months []model.MonthlyStats, txns []model.Transaction, positions []model.MCAPosition) model.MetricsDraft {
	if len(months) == 0 || len(txns) == 0 {
		return model.MetricsDraft{AverageMonthlyRevenue: decimal.Zero}
	}

	totalRevenue := decimal.Zero
	daysNegative := 0
	for _, m := range months {
		totalRevenue = totalRevenue.Add(m.TrueRevenue)
		daysNegative += m.DaysNegative
	}
	monthCount := decimal.NewFromInt(int64(len(months)))
	avgRevenue := totalRevenue.Div(monthCount).Round(2)

	mcaBurden := decimal.Zero
	for _, p := range positions {
		mcaBurden = mcaBurden.Add(MonthlyPayment(p))
	}

	credits := 0
	nsfEvents := 0
	for _, tx := range txns {
		if tx.Direction == model.DirectionCredit {
			credits++
		}
		if strings.Contains(strings.ToUpper(tx.Description), "NSF") || tx.Balance.IsNegative() {
			nsfEvents++
		}
	}

	spanDays := statementDays(txns)

	return model.MetricsDraft{
		AverageMonthlyRevenue: avgRevenue,
		RevenueStability:      revenueStability(months, avgRevenue),
		DaysCashOnHand:        daysCashOnHand(months, avgRevenue),
		MCAPaymentRatio:       ratio(mcaBurden, avgRevenue),
		DepositFrequency:      float64(credits) / float64(len(months)),
		NSFRate:               float64(nsfEvents) / float64(len(txns)),
		NegativeDayRate:       float64(daysNegative) / float64(spanDays),
	}
}

// revenueStability is 1 minus the coefficient of variation of monthly true
// revenue, clamped to [0,1]. A single month reads as fully stable.
func revenueStability(months []model.MonthlyStats, avgRevenue decimal.Decimal) float64 {
	if len(months) < 2 {
		return 1.0
	}
	mean := avgRevenue.InexactFloat64()
	if mean <= 0 {
		return 0.0
	}

	var sumSq float64
	for _, m := range months {
		d := m.TrueRevenue.InexactFloat64() - mean
		sumSq += d * d
	}
	stddev := math.Sqrt(sumSq / float64(len(months)))

	return clamp01(1.0 - stddev/mean)
}

// daysCashOnHand divides the average month-end balance by the estimated
// daily operating spend (the 70%-of-revenue simplification spread over 30
// days).
func daysCashOnHand(months []model.MonthlyStats, avgRevenue decimal.Decimal) float64 {
	totalEnding := decimal.Zero
	for _, m := range months {
		totalEnding = totalEnding.Add(m.EndingBalance)
	}
	avgEnding := totalEnding.Div(decimal.NewFromInt(int64(len(months))))

	dailyExpense := avgRevenue.Mul(expenseRevenueRatio).Div(decimal.NewFromInt(daysPerMonth))
	if !dailyExpense.IsPositive() {
		return 0.0
	}
	return avgEnding.Div(dailyExpense).InexactFloat64()
}

// statementDays is the inclusive day span between the first and last
// transaction dates.
func statementDays(txns []model.Transaction) int {
	first, last := txns[0].Date, txns[0].Date
	for _, tx := range txns[1:] {
		if tx.Date.Before(first) {
			first = tx.Date
		}
		if tx.Date.After(last) {
			last = tx.Date
		}
	}
	return int(last.Sub(first).Hours()/24) + 1
}

func ratio(num, den decimal.Decimal) float64 {
	if !den.IsPositive() {
		return 0.0
	}
	return num.Div(den).InexactFloat64()
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
