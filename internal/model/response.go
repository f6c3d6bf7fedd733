package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MCAPosition is one detected cash-advance obligation.
type MCAPosition struct {
	LenderName     string
	DailyPayment   decimal.Decimal
	PositionNumber int // ordinal rank among concurrent positions, 1 = largest
}

// MonthlyStats aggregates one calendar month of the statement.
type MonthlyStats struct {
	Month         string // "YYYY-MM"
	TotalDeposits decimal.Decimal
	TrueRevenue   decimal.Decimal
	EndingBalance decimal.Decimal
	DaysNegative  int
}

// UnderwritingMetrics summarizes the whole statement for a credit decision.
type UnderwritingMetrics struct {
	AverageMonthlyRevenue decimal.Decimal
	RevenueStability      float64
	DaysCashOnHand        float64
	MCAPaymentRatio       float64
	DepositFrequency      float64
	NSFRate               float64
	NegativeDayRate       float64
	FraudScore            int
}

// MetricsDraft holds every underwriting metric except the fraud score, which
// is only known after the fraud scorer has run. Finalize produces the
// complete metrics value, so no aggregate is mutated after construction.
type MetricsDraft struct {
	AverageMonthlyRevenue decimal.Decimal
	RevenueStability      float64
	DaysCashOnHand        float64
	MCAPaymentRatio       float64
	DepositFrequency      float64
	NSFRate               float64
	NegativeDayRate       float64
}

// Finalize completes the draft with the fraud score.
func (d MetricsDraft) Finalize(fraudScore int) UnderwritingMetrics {
	return UnderwritingMetrics{
		AverageMonthlyRevenue: d.AverageMonthlyRevenue,
		RevenueStability:      d.RevenueStability,
		DaysCashOnHand:        d.DaysCashOnHand,
		MCAPaymentRatio:       d.MCAPaymentRatio,
		DepositFrequency:      d.DepositFrequency,
		NSFRate:               d.NSFRate,
		NegativeDayRate:       d.NegativeDayRate,
		FraudScore:            fraudScore,
	}
}

// CashFlowMetrics nets the statement's money movement.
type CashFlowMetrics struct {
	GrossCashIn  decimal.Decimal
	GrossCashOut decimal.Decimal
	NetCashFlow  decimal.Decimal
	TrueCashFlow decimal.Decimal
	MCABurden    decimal.Decimal
	FreeCashFlow decimal.Decimal
}

// Statement is the ingestion result: account identity, raw transactions in
// statement order, and the extraction confidence in [0,1].
type Statement struct {
	Account      BankAccount
	Transactions []Transaction
	Confidence   float64
}

// Response is the terminal aggregate returned for one processed statement.
type Response struct {
	RunID            string
	Account          BankAccount
	Transactions     []Transaction
	MonthlySummaries []MonthlyStats
	MCAPositions     []MCAPosition
	Metrics          UnderwritingMetrics
	CashFlow         CashFlowMetrics
	FraudFactors     []string
	ConfidenceScore  float64
	ProcessingTime   time.Duration
}
