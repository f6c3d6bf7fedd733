// Package classify labels bank transactions for MCA underwriting. The
// classifier is a pure function of a transaction's direction, description,
// amount and balance; it always assigns exactly one category.
package classify

import (
	"strings"

	"github.com/moneythumb/moneythumb/internal/model"
)

// Classify returns the transaction with its category and revenue/MCA flags
// assigned. It is total: every transaction gets a category, falling back to
// TRUE_REVENUE for unmatched credits and OPERATING_EXPENSE for unmatched
// debits. Unmatched deposits are presumed revenue on purpose; the source
// system gives the borrower the benefit of the doubt and lets the fraud
// scorer pull the overall confidence back down.
func Classify(tx model.Transaction) model.Transaction {
	desc := strings.ToUpper(tx.Description)

	if tx.Direction == model.DirectionCredit {
		tx = classifyCredit(tx, desc)
	} else {
		tx = classifyDebit(tx, desc)
	}

	// NSF override: evaluated last, supersedes the branch result.
	if isNSF(tx, desc) {
		tx.Category = model.CategoryNonTrueRevenue
		tx.IsTrueRevenue = false
		tx.IsMCAPayment = false
		tx.MCALender = nil
	}

	return tx
}

// All classifies every transaction in input order. The mapping is 1:1.
func All(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, tx := range txns {
		out[i] = Classify(tx)
	}
	return out
}

func classifyCredit(tx model.Transaction, desc string) model.Transaction {
	for _, marker := range nonTrueRevenueMarkers {
		if strings.Contains(desc, marker) {
			tx.Category = model.CategoryNonTrueRevenue
			tx.IsTrueRevenue = false
			return tx
		}
	}

	for _, marker := range trueRevenueMarkers {
		if strings.Contains(desc, marker) {
			tx.Category = model.CategoryTrueRevenue
			tx.IsTrueRevenue = true
			return tx
		}
	}

	// Optimistic default: an unmatched deposit counts as revenue.
	tx.Category = model.CategoryTrueRevenue
	tx.IsTrueRevenue = true
	return tx
}

func classifyDebit(tx model.Transaction, desc string) model.Transaction {
	for _, sig := range lenderSignatures {
		if sig.MatchString(desc) {
			tx.Category = model.CategoryMCAPayment
			tx.IsMCAPayment = true
			tx.MCALender = ExtractLender(tx.Description)
			return tx
		}
	}

	for _, marker := range operatingExpenseMarkers {
		if strings.Contains(desc, marker) {
			tx.Category = model.CategoryOperatingExpense
			return tx
		}
	}

	for _, marker := range transferOutMarkers {
		if strings.Contains(desc, marker) {
			tx.Category = model.CategoryTransferOut
			return tx
		}
	}

	tx.Category = model.CategoryOperatingExpense
	return tx
}

// isNSF reports whether the transaction is a non-sufficient-funds event:
// an NSF/overdraft keyword, a negative post-transaction balance, or a
// returned item credited back (RETURN with a positive amount).
func isNSF(tx model.Transaction, desc string) bool {
	for _, marker := range nsfMarkers {
		if strings.Contains(desc, marker) {
			return true
		}
	}

	if tx.Balance.IsNegative() {
		return true
	}

	if strings.Contains(desc, "RETURN") && tx.Amount.IsPositive() {
		return true
	}

	return false
}
