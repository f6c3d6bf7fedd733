package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moneythumb/moneythumb/internal/model"
)

// Header is the CSV header for classified transaction exports.
const Header = "date,description,amount,balance,direction,category,true_revenue,mca_payment,mca_lender"

const (
	numFields    = 9
	colDate      = 0
	colDesc      = 1
	colAmount    = 2
	colBalance   = 3
	colDirection = 4
	colCategory  = 5
	colTrueRev   = 6
	colMCA       = 7
	colLender    = 8
)

// WriteTransactions writes classified transactions as CSV (with header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		if err := cw.Write(marshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.Format(dateFormat)
	row[colDesc] = tx.Description
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colBalance] = tx.Balance.StringFixed(2)
	row[colDirection] = string(tx.Direction)
	row[colCategory] = string(tx.Category)
	row[colTrueRev] = strconv.FormatBool(tx.IsTrueRevenue)
	row[colMCA] = strconv.FormatBool(tx.IsMCAPayment)
	if tx.MCALender != nil {
		row[colLender] = *tx.MCALender
	}
	return row
}
