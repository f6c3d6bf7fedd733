package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneythumb/moneythumb/internal/model"
)

func hasInvariant(errs []ValidationError, n int) bool {
	for _, e := range errs {
		if e.Invariant == n {
			return true
		}
	}
	return false
}

func TestValidate_CleanClassifiedSet(t *testing.T) {
	txns := All([]model.Transaction{
		credit("ACH CREDIT FROM CUSTOMER", "500.00", "1500.00"),
		debit("WORKING CAPITAL DAILY ACH PMT", "-300.00", "200.00"),
		debit("OVERDRAFT FEE", "-35.00", "-35.00"),
		debit("GUSTO PAYROLL", "-400.00", "800.00"),
	})
	assert.Empty(t, Validate(txns))
}

func TestValidate_UnknownCategory(t *testing.T) {
	tx := credit("DEPOSIT", "100.00", "100.00")
	tx.Category = "SOMETHING_ELSE"
	errs := Validate([]model.Transaction{tx})
	require.NotEmpty(t, errs)
	assert.True(t, hasInvariant(errs, 1))
}

func TestValidate_UnclassifiedTransaction(t *testing.T) {
	errs := Validate([]model.Transaction{credit("DEPOSIT", "100.00", "100.00")})
	assert.True(t, hasInvariant(errs, 1))
}

func TestValidate_InconsistentTrueRevenueFlag(t *testing.T) {
	tx := Classify(credit("ACH CREDIT FROM CUSTOMER", "100.00", "900.00"))
	tx.IsTrueRevenue = false
	errs := Validate([]model.Transaction{tx})
	assert.True(t, hasInvariant(errs, 2))
}

func TestValidate_InconsistentMCAFlag(t *testing.T) {
	tx := Classify(debit("GUSTO PAYROLL", "-100.00", "900.00"))
	tx.IsMCAPayment = true
	errs := Validate([]model.Transaction{tx})
	assert.True(t, hasInvariant(errs, 3))
}

func TestValidate_LenderOnNonMCACategory(t *testing.T) {
	tx := Classify(debit("GUSTO PAYROLL", "-100.00", "900.00"))
	lender := "ONDECK"
	tx.MCALender = &lender
	errs := Validate([]model.Transaction{tx})
	assert.True(t, hasInvariant(errs, 3))
}

func TestValidate_NegativeBalanceMustBeNonTrueRevenue(t *testing.T) {
	tx := Classify(credit("ACH CREDIT FROM CUSTOMER", "100.00", "-50.00"))
	tx.Category = model.CategoryTrueRevenue
	tx.IsTrueRevenue = true
	errs := Validate([]model.Transaction{tx})
	assert.True(t, hasInvariant(errs, 4))
}

func TestValidate_Empty(t *testing.T) {
	assert.Empty(t, Validate(nil))
}
