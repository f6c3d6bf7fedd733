// Package ingest turns statement exports into raw transactions ready for
// classification. It stands in for the document-extraction stage: input is
// an already-textual statement file, output is the account identity, the
// ordered transaction list, and an extraction confidence in [0,1].
package ingest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moneythumb/moneythumb/internal/model"
)

// Metadata carries the account identity the statement file itself does not
// contain.
type Metadata struct {
	BankName      string
	AccountNumber string // masked, e.g. "****1234"
}

// Parser converts one statement format into a Statement.
type Parser interface {
	Parse(r io.Reader, meta Metadata) (*model.Statement, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericCSV{})
	return r
}

// FromFile parses a statement file using the named format.
func (r *Registry) FromFile(format, path string, meta Metadata) (*model.Statement, error) {
	p := r.Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	stmt, err := p.Parse(f, meta)
	if err != nil {
		return nil, fmt.Errorf("parsing %s statement %s: %w", format, path, err)
	}
	return stmt, nil
}

// statementPeriod fills the account's statement window from the transaction
// date range.
func statementPeriod(account *model.BankAccount, txns []model.Transaction) {
	if len(txns) == 0 {
		return
	}
	first, last := txns[0].Date, txns[0].Date
	for _, tx := range txns[1:] {
		if tx.Date.Before(first) {
			first = tx.Date
		}
		if tx.Date.After(last) {
			last = tx.Date
		}
	}
	account.StatementStart = first
	account.StatementEnd = last
}
