// Package analyze holds the statement-level calculators the pipeline
// sequences: MCA position detection, monthly aggregation, underwriting
// metrics, and cash-flow netting. Every function is a pure computation over
// classified transactions.
package analyze

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/moneythumb/moneythumb/internal/model"
)

// minPaymentsPerPosition is how many debits to the same lender establish a
// cash-advance position rather than a one-off payment.
const minPaymentsPerPosition = 3

// DetectPositions finds active MCA positions in a classified transaction
// set. Payments are grouped by extracted lender; a lender with at least
// three payments is a position. The daily payment is the lender's most
// frequent payment amount (ties resolved toward the larger amount), and
// positions are ranked by daily payment descending.
func DetectPositions(txns []model.Transaction) []model.MCAPosition {
	byLender := make(map[string][]decimal.Decimal)
	var lenderOrder []string

	for _, tx := range txns {
		if !tx.IsMCAPayment || tx.MCALender == nil {
			continue
		}
		lender := *tx.MCALender
		if _, seen := byLender[lender]; !seen {
			lenderOrder = append(lenderOrder, lender)
		}
		// Payments are debits; positions track the magnitude.
		byLender[lender] = append(byLender[lender], tx.Amount.Abs())
	}

	var positions []model.MCAPosition
	for _, lender := range lenderOrder {
		amounts := byLender[lender]
		if len(amounts) < minPaymentsPerPosition {
			continue
		}
		positions = append(positions, model.MCAPosition{
			LenderName:   lender,
			DailyPayment: modalAmount(amounts),
		})
	}

	sort.SliceStable(positions, func(i, j int) bool {
		cmp := positions[i].DailyPayment.Cmp(positions[j].DailyPayment)
		if cmp != 0 {
			return cmp > 0
		}
		return positions[i].LenderName < positions[j].LenderName
	})
	for i := range positions {
		positions[i].PositionNumber = i + 1
	}

	return positions
}

// modalAmount returns the most frequent amount, preferring the larger one
// when counts tie.
func modalAmount(amounts []decimal.Decimal) decimal.Decimal {
	counts := make(map[string]int)
	values := make(map[string]decimal.Decimal)
	for _, a := range amounts {
		key := a.String()
		counts[key]++
		values[key] = a
	}

	var best decimal.Decimal
	bestCount := 0
	for key, count := range counts {
		v := values[key]
		if count > bestCount || (count == bestCount && v.GreaterThan(best)) {
			best = v
			bestCount = count
		}
	}
	return best
}
