package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction moved money into or out of the
// account.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Category is the underwriting label assigned to a transaction.
type Category string

const (
	CategoryTrueRevenue      Category = "TRUE_REVENUE"
	CategoryNonTrueRevenue   Category = "NON_TRUE_REVENUE"
	CategoryMCAPayment       Category = "MCA_PAYMENT"
	CategoryOperatingExpense Category = "OPERATING_EXPENSE"
	CategoryTransferOut      Category = "TRANSFER_OUT"
)

// Categories lists every valid category.
func Categories() []Category {
	return []Category{
		CategoryTrueRevenue,
		CategoryNonTrueRevenue,
		CategoryMCAPayment,
		CategoryOperatingExpense,
		CategoryTransferOut,
	}
}

// Transaction is one statement line. Date, Description, Amount, Balance and
// Direction come from ingestion; Category, IsTrueRevenue, IsMCAPayment and
// MCALender are assigned once by the classifier.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // signed; debits are negative
	Balance     decimal.Decimal // account balance immediately after this transaction
	Direction   Direction

	Category      Category // empty until classified
	IsTrueRevenue bool
	IsMCAPayment  bool
	MCALender     *string
}

// MonthKey returns the calendar-month grouping key, e.g. "2025-01".
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// DayKey returns the calendar-day grouping key, e.g. "2025-01-15".
func (t Transaction) DayKey() string {
	return t.Date.Format("2006-01-02")
}
