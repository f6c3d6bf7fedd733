package classify

import "regexp"

// Rule tables are ordered: classification is first-match-wins, so the slice
// order below is load-bearing. All matching happens against the uppercased
// description.

// nonTrueRevenueMarkers flag deposits that are not sales income: internal
// transfers, reversals, refunds, loan or MCA proceeds, tax refunds and
// insurance claims. Checked before the true-revenue list.
var nonTrueRevenueMarkers = []string{
	"ONLINE TRANSFER FROM",
	"REVERSAL",
	"CREDIT RETURN",
	"BOOK TRANSFER CREDIT",
	"LOAN PROCEEDS",
	"MCA DEPOSITS",
	"TRANSFER FROM",
	"RETURN ITEM",
	"LOAN DEPOSIT",
	"TAX REFUND",
	"INSURANCE CLAIM",
}

// trueRevenueMarkers flag deposits that look like genuine sales income.
var trueRevenueMarkers = []string{
	"ACH CREDIT FROM CUSTOMERS",
	"WIRE TRANSFERS FROM CLIENTS",
	"CHECK DEPOSITS FROM SALES",
	"CREDIT CARD DEPOSITS",
	"CASH DEPOSITS",
	"PAYMENT",
	"DEPOSIT",
	"CREDIT CARD SETTLEMENT",
	"WIRE TRANSFER",
	"ACH CREDIT",
}

// lenderSignatures match debits that repay a merchant cash advance: named
// lenders plus the generic capital/advance/daily-ACH phrasings.
var lenderSignatures = []*regexp.Regexp{
	regexp.MustCompile(`(?i).*MERCHANT.*CAPITAL.*`),
	regexp.MustCompile(`(?i).*BUSINESS.*ADVANCE.*`),
	regexp.MustCompile(`(?i).*DAILY.*ACH.*`),
	regexp.MustCompile(`(?i).*WORKING.*CAPITAL.*`),
	regexp.MustCompile(`(?i)Orig CO Name.*Financial.*`),
	regexp.MustCompile(`(?i).*FUNDING.*CIRCLE.*`),
	regexp.MustCompile(`(?i).*KABBAGE.*`),
	regexp.MustCompile(`(?i).*ONDECK.*`),
	regexp.MustCompile(`(?i).*FORWARD.*FINANCING.*`),
	regexp.MustCompile(`(?i).*RAPID.*ADVANCE.*`),
}

// operatingExpenseMarkers label routine business outflows.
var operatingExpenseMarkers = []string{
	"PAYROLL",
	"RENT",
	"UTILITIES",
	"SUPPLIES",
	"SALARY",
	"WAGE",
	"RENT PAYMENT",
	"ELECTRIC",
	"GAS",
	"WATER",
	"INTERNET",
}

// transferOutMarkers label money moved to another account.
var transferOutMarkers = []string{
	"ONLINE TRANSFER TO",
	"WIRE TRANSFER OUT",
	"TRANSFER TO",
	"WIRE OUT",
	"BOOK TRANSFER",
}

// nsfMarkers flag non-sufficient-funds and overdraft events. The NSF
// override runs after the credit/debit cascades and supersedes them.
var nsfMarkers = []string{
	"NSF",
	"NON-SUFFICIENT FUNDS",
	"OVERDRAFT",
	"RETURN ITEM",
	"INSUFFICIENT FUNDS",
	"OD FEE",
	"OVERDRAFT FEE",
	"RETURNED ITEM",
	"INSUFFICIENT",
}

// lenderCaptures extract the lender name from an MCA payment description,
// tried in order; the first capture wins.
var lenderCaptures = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(.*CAPITAL.*)`),
	regexp.MustCompile(`(?i)(.*FINANCIAL.*)`),
	regexp.MustCompile(`(?i)(.*FUNDING.*)`),
	regexp.MustCompile(`(?i)(.*ADVANCE.*)`),
	regexp.MustCompile(`(?i)Orig CO Name[:\s]*([A-Z\s]+)`),
}
