package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneythumb/moneythumb/internal/model"
)

// GenericCSV parses the plain statement export format:
// date,description,amount,balance with ISO dates and signed amounts.
// Malformed rows are skipped rather than fatal; the share of rows that
// parsed cleanly becomes the extraction confidence.
type GenericCSV struct{}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 4
	genericColDate    = 0
	genericColDesc    = 1
	genericColAmount  = 2
	genericColBalance = 3
)

// Format returns the parser name.
func (p *GenericCSV) Format() string { return "generic" }

// Parse reads a generic statement CSV and returns the Statement.
func (p *GenericCSV) Parse(r io.Reader, meta Metadata) (*model.Statement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length checked per row so bad rows can be skipped

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	stmt := &model.Statement{
		Account: model.BankAccount{
			BankName:      meta.BankName,
			AccountNumber: meta.AccountNumber,
		},
	}

	if len(records) <= 1 {
		return stmt, nil
	}

	parsed, skipped := 0, 0
	for _, rec := range records[1:] {
		tx, err := parseGenericRow(rec)
		if err != nil {
			skipped++
			continue
		}
		stmt.Transactions = append(stmt.Transactions, tx)
		parsed++
	}

	if parsed > 0 {
		stmt.Confidence = float64(parsed) / float64(parsed+skipped)
	}
	statementPeriod(&stmt.Account, stmt.Transactions)

	return stmt, nil
}

func parseGenericRow(rec []string) (model.Transaction, error) {
	if len(rec) != genericNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", genericNumFields, len(rec))
	}

	date, err := time.Parse(genericDateFormat, rec[genericColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[genericColDate], err)
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}

	balance, err := decimal.NewFromString(rec[genericColBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", rec[genericColBalance], err)
	}

	direction := model.DirectionCredit
	if amount.IsNegative() {
		direction = model.DirectionDebit
	}

	return model.Transaction{
		Date:        date,
		Description: rec[genericColDesc],
		Amount:      amount,
		Balance:     balance,
		Direction:   direction,
	}, nil
}
