package analyze

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/moneythumb/moneythumb/internal/model"
)

// MonthlySummaries groups transactions by calendar month and aggregates
// each month present, sorted chronologically. Ending balance is the balance
// after the month's last transaction in statement order; a day counts as
// negative when its last transaction closes below zero.
func MonthlySummaries(txns []model.Transaction) []model.MonthlyStats {
	type monthAccum struct {
		stats       model.MonthlyStats
		dayClosings map[string]decimal.Decimal
	}

	months := make(map[string]*monthAccum)
	var order []string

	for _, tx := range txns {
		key := tx.MonthKey()
		m, ok := months[key]
		if !ok {
			m = &monthAccum{
				stats:       model.MonthlyStats{Month: key},
				dayClosings: make(map[string]decimal.Decimal),
			}
			months[key] = m
			order = append(order, key)
		}

		if tx.Direction == model.DirectionCredit {
			m.stats.TotalDeposits = m.stats.TotalDeposits.Add(tx.Amount)
			if tx.IsTrueRevenue {
				m.stats.TrueRevenue = m.stats.TrueRevenue.Add(tx.Amount)
			}
		}

		m.stats.EndingBalance = tx.Balance
		m.dayClosings[tx.DayKey()] = tx.Balance
	}

	sort.Strings(order)

	summaries := make([]model.MonthlyStats, 0, len(order))
	for _, key := range order {
		m := months[key]
		for _, closing := range m.dayClosings {
			if closing.IsNegative() {
				m.stats.DaysNegative++
			}
		}
		summaries = append(summaries, m.stats)
	}
	return summaries
}
