package classify

import (
	"fmt"

	"github.com/moneythumb/moneythumb/internal/model"
)

// ValidationError describes a single consistency violation in a classified
// transaction set.
type ValidationError struct {
	Invariant   int
	Index       int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [txn %d]: %s", e.Invariant, e.Index, e.Description)
}

// Validate enforces 4 invariants on classified transactions:
//
//	1: every transaction carries one of the known categories
//	2: IsTrueRevenue is set iff category is TRUE_REVENUE
//	3: IsMCAPayment is set iff category is MCA_PAYMENT, and only MCA
//	   payments carry a lender name
//	4: a negative post-transaction balance forces NON_TRUE_REVENUE
func Validate(txns []model.Transaction) []ValidationError {
	valid := make(map[model.Category]bool)
	for _, c := range model.Categories() {
		valid[c] = true
	}

	var errs []ValidationError
	for i, tx := range txns {
		if !valid[tx.Category] {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Index:       i,
				Description: fmt.Sprintf("unknown category %q", tx.Category),
			})
		}

		if tx.IsTrueRevenue != (tx.Category == model.CategoryTrueRevenue) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Index:       i,
				Description: fmt.Sprintf("is_true_revenue=%v inconsistent with category %s", tx.IsTrueRevenue, tx.Category),
			})
		}

		if tx.IsMCAPayment != (tx.Category == model.CategoryMCAPayment) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Index:       i,
				Description: fmt.Sprintf("is_mca_payment=%v inconsistent with category %s", tx.IsMCAPayment, tx.Category),
			})
		}
		if tx.MCALender != nil && tx.Category != model.CategoryMCAPayment {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Index:       i,
				Description: fmt.Sprintf("lender %q on non-MCA category %s", *tx.MCALender, tx.Category),
			})
		}

		if tx.Balance.IsNegative() && tx.Category != model.CategoryNonTrueRevenue {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Index:       i,
				Description: fmt.Sprintf("negative balance %s not classified NON_TRUE_REVENUE", tx.Balance.StringFixed(2)),
			})
		}
	}

	return errs
}
