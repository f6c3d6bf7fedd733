// Package report flattens a pipeline Response into the MoneyThumb API
// report shape, and exports classified transactions as CSV. The mapping is
// lossless over the response fields the API names.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/moneythumb/moneythumb/internal/analyze"
	"github.com/moneythumb/moneythumb/internal/model"
)

const dateFormat = "2006-01-02"

// Report is the flattened JSON view of one processed statement.
type Report struct {
	RunID           string         `json:"run_id"`
	Account         AccountSection `json:"account"`
	Metrics         MetricsSection `json:"metrics"`
	MCAPositions    []PositionRow  `json:"mca_positions"`
	MonthlySummary  []MonthRow     `json:"monthly_summary"`
	FraudFactors    []string       `json:"fraud_factors"`
	ConfidenceScore float64        `json:"confidence_score"`
	ProcessingTime  float64        `json:"processing_time"` // seconds
}

// AccountSection identifies the account and statement window.
type AccountSection struct {
	Bank            string          `json:"bank"`
	AccountLast4    string          `json:"account_last4"`
	StatementPeriod StatementPeriod `json:"statement_period"`
}

// StatementPeriod is the inclusive statement date range.
type StatementPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MetricsSection carries the statement-level underwriting numbers.
type MetricsSection struct {
	AverageMonthlyRevenue float64 `json:"average_monthly_revenue"`
	TrueRevenueTotal      float64 `json:"true_revenue_total"`
	GrossDeposits         float64 `json:"gross_deposits"`
	MCAPositionsDetected  int     `json:"mca_positions_detected"`
	TotalMCAPayments      float64 `json:"total_mca_payments"`
	DaysNegative          int     `json:"days_negative"`
	NSFCount              int     `json:"nsf_count"`
	FraudScore            int     `json:"fraud_score"`
}

// PositionRow is one detected MCA position.
type PositionRow struct {
	Lender       string  `json:"lender"`
	DailyPayment float64 `json:"daily_payment"`
	Position     int     `json:"position"`
}

// MonthRow is one calendar month of the statement.
type MonthRow struct {
	Month         string  `json:"month"`
	TrueRevenue   float64 `json:"true_revenue"`
	GrossDeposits float64 `json:"gross_deposits"`
	EndingBalance float64 `json:"ending_balance"`
	DaysNegative  int     `json:"days_negative"`
}

// Build flattens a Response into a Report.
func Build(resp *model.Response) Report {
	trueRevenue := decimal.Zero
	grossDeposits := decimal.Zero
	daysNegative := 0
	months := make([]MonthRow, 0, len(resp.MonthlySummaries))
	for _, m := range resp.MonthlySummaries {
		trueRevenue = trueRevenue.Add(m.TrueRevenue)
		grossDeposits = grossDeposits.Add(m.TotalDeposits)
		daysNegative += m.DaysNegative
		months = append(months, MonthRow{
			Month:         m.Month,
			TrueRevenue:   m.TrueRevenue.InexactFloat64(),
			GrossDeposits: m.TotalDeposits.InexactFloat64(),
			EndingBalance: m.EndingBalance.InexactFloat64(),
			DaysNegative:  m.DaysNegative,
		})
	}

	totalMCA := decimal.Zero
	positions := make([]PositionRow, 0, len(resp.MCAPositions))
	for _, p := range resp.MCAPositions {
		totalMCA = totalMCA.Add(analyze.MonthlyPayment(p))
		positions = append(positions, PositionRow{
			Lender:       p.LenderName,
			DailyPayment: p.DailyPayment.InexactFloat64(),
			Position:     p.PositionNumber,
		})
	}

	nsfCount := 0
	for _, tx := range resp.Transactions {
		if strings.Contains(strings.ToUpper(tx.Description), "NSF") {
			nsfCount++
		}
	}

	factors := resp.FraudFactors
	if factors == nil {
		factors = []string{}
	}

	return Report{
		RunID: resp.RunID,
		Account: AccountSection{
			Bank:         resp.Account.BankName,
			AccountLast4: resp.Account.LastFour(),
			StatementPeriod: StatementPeriod{
				Start: resp.Account.StatementStart.Format(dateFormat),
				End:   resp.Account.StatementEnd.Format(dateFormat),
			},
		},
		Metrics: MetricsSection{
			AverageMonthlyRevenue: resp.Metrics.AverageMonthlyRevenue.InexactFloat64(),
			TrueRevenueTotal:      trueRevenue.InexactFloat64(),
			GrossDeposits:         grossDeposits.InexactFloat64(),
			MCAPositionsDetected:  len(resp.MCAPositions),
			TotalMCAPayments:      totalMCA.InexactFloat64(),
			DaysNegative:          daysNegative,
			NSFCount:              nsfCount,
			FraudScore:            resp.Metrics.FraudScore,
		},
		MCAPositions:    positions,
		MonthlySummary:  months,
		FraudFactors:    factors,
		ConfidenceScore: resp.ConfidenceScore,
		ProcessingTime:  resp.ProcessingTime.Seconds(),
	}
}

// WriteJSON writes the indented JSON report for a response.
func WriteJSON(w io.Writer, resp *model.Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Build(resp)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
