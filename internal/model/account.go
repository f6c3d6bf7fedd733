package model

import (
	"strings"
	"time"
)

// BankAccount identifies the account a statement belongs to. Produced by
// ingestion and read-only afterward.
type BankAccount struct {
	BankName       string
	AccountNumber  string // masked, e.g. "****1234"
	StatementStart time.Time
	StatementEnd   time.Time
}

// LastFour returns the unmasked tail of the account number.
// "****1234" -> "1234"
func (a BankAccount) LastFour() string {
	if i := strings.LastIndex(a.AccountNumber, "*"); i >= 0 {
		return a.AccountNumber[i+1:]
	}
	return a.AccountNumber
}
