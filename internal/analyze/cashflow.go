package analyze

import (
	"github.com/shopspring/decimal"

	"github.com/moneythumb/moneythumb/internal/model"
)

// expenseRevenueRatio estimates operating expenses as a fixed share of true
// revenue. The source system uses this simplification instead of summing
// actual expense transactions; it is kept verbatim.
var expenseRevenueRatio = decimal.RequireFromString("0.7")

// businessDaysPerMonth converts a daily MCA payment into a monthly burden.
const businessDaysPerMonth = 20

// AggregateCashFlow nets the statement's cash movement from the monthly
// summaries and detected MCA positions.
func AggregateCashFlow(months []model.MonthlyStats, positions []model.MCAPosition) model.CashFlowMetrics {
	totalDeposits := decimal.Zero
	trueRevenue := decimal.Zero
	for _, m := range months {
		totalDeposits = totalDeposits.Add(m.TotalDeposits)
		trueRevenue = trueRevenue.Add(m.TrueRevenue)
	}

	operatingExpenses := trueRevenue.Mul(expenseRevenueRatio)

	mcaBurden := decimal.Zero
	for _, p := range positions {
		mcaBurden = mcaBurden.Add(MonthlyPayment(p))
	}

	trueCashFlow := trueRevenue.Sub(operatingExpenses)
	return model.CashFlowMetrics{
		GrossCashIn:  totalDeposits,
		GrossCashOut: operatingExpenses.Add(mcaBurden),
		NetCashFlow:  totalDeposits.Sub(operatingExpenses).Sub(mcaBurden),
		TrueCashFlow: trueCashFlow,
		MCABurden:    mcaBurden,
		FreeCashFlow: trueCashFlow.Sub(mcaBurden),
	}
}

// MonthlyPayment estimates a position's monthly cost: daily payment over 20
// business days.
func MonthlyPayment(p model.MCAPosition) decimal.Decimal {
	return p.DailyPayment.Mul(decimal.NewFromInt(businessDaysPerMonth))
}
