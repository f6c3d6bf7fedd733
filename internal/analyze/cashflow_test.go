package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moneythumb/moneythumb/internal/model"
)

func TestAggregateCashFlow(t *testing.T) {
	months := []model.MonthlyStats{
		{Month: "2025-01", TotalDeposits: dec("6000.00"), TrueRevenue: dec("5000.00")},
		{Month: "2025-02", TotalDeposits: dec("4000.00"), TrueRevenue: dec("3000.00")},
	}
	positions := []model.MCAPosition{
		{LenderName: "ONDECK", DailyPayment: dec("100.00"), PositionNumber: 1},
	}

	cf := AggregateCashFlow(months, positions)

	// Operating expenses are estimated at 70% of true revenue; the MCA
	// burden is the daily payment over 20 business days.
	assert.True(t, cf.GrossCashIn.Equal(dec("10000.00")), "gross in %s", cf.GrossCashIn)
	assert.True(t, cf.MCABurden.Equal(dec("2000.00")), "burden %s", cf.MCABurden)
	assert.True(t, cf.GrossCashOut.Equal(dec("7600.00")), "gross out %s", cf.GrossCashOut)
	assert.True(t, cf.NetCashFlow.Equal(dec("2400.00")), "net %s", cf.NetCashFlow)
	assert.True(t, cf.TrueCashFlow.Equal(dec("2400.00")), "true %s", cf.TrueCashFlow)
	assert.True(t, cf.FreeCashFlow.Equal(dec("400.00")), "free %s", cf.FreeCashFlow)
}

func TestAggregateCashFlow_NoPositions(t *testing.T) {
	months := []model.MonthlyStats{
		{Month: "2025-01", TotalDeposits: dec("1000.00"), TrueRevenue: dec("1000.00")},
	}

	cf := AggregateCashFlow(months, nil)
	assert.True(t, cf.MCABurden.IsZero())
	assert.True(t, cf.FreeCashFlow.Equal(cf.TrueCashFlow))
}

func TestAggregateCashFlow_Empty(t *testing.T) {
	cf := AggregateCashFlow(nil, nil)
	assert.True(t, cf.GrossCashIn.IsZero())
	assert.True(t, cf.NetCashFlow.IsZero())
}

func TestMonthlyPayment(t *testing.T) {
	p := model.MCAPosition{LenderName: "KABBAGE", DailyPayment: dec("180.00")}
	assert.True(t, MonthlyPayment(p).Equal(dec("3600.00")))
}
