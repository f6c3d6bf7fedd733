// Package runlog keeps an append-only CSV audit trail of pipeline runs.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run log.
type Entry struct {
	RunID        string
	Timestamp    time.Time
	Source       string
	Transactions int
	Positions    int
	FraudScore   int
	Confidence   float64
	DurationMS   int64
}

// Header is the CSV header for runs.csv.
const Header = "run_id,timestamp,source,transactions,positions,fraud_score,confidence,duration_ms"

const (
	numFields       = 8
	logDir          = "logs"
	logFile         = "logs/runs.csv"
	colRunID        = 0
	colTimestamp    = 1
	colSource       = 2
	colTransactions = 3
	colPositions    = 4
	colFraudScore   = 5
	colConfidence   = 6
	colDurationMS   = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSource] = e.Source
	row[colTransactions] = strconv.Itoa(e.Transactions)
	row[colPositions] = strconv.Itoa(e.Positions)
	row[colFraudScore] = strconv.Itoa(e.FraudScore)
	row[colConfidence] = strconv.FormatFloat(e.Confidence, 'f', 2, 64)
	row[colDurationMS] = strconv.FormatInt(e.DurationMS, 10)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	txns, err := strconv.Atoi(record[colTransactions])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing transactions %q: %w", record[colTransactions], err)
	}

	positions, err := strconv.Atoi(record[colPositions])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing positions %q: %w", record[colPositions], err)
	}

	score, err := strconv.Atoi(record[colFraudScore])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing fraud_score %q: %w", record[colFraudScore], err)
	}

	confidence, err := strconv.ParseFloat(record[colConfidence], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing confidence %q: %w", record[colConfidence], err)
	}

	duration, err := strconv.ParseInt(record[colDurationMS], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing duration_ms %q: %w", record[colDurationMS], err)
	}

	return Entry{
		RunID:        record[colRunID],
		Timestamp:    ts,
		Source:       record[colSource],
		Transactions: txns,
		Positions:    positions,
		FraudScore:   score,
		Confidence:   confidence,
		DurationMS:   duration,
	}, nil
}

// Append writes entries to <root>/logs/runs.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/runs.csv. Returns an empty
// slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
