package runlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(runID string) Entry {
	return Entry{
		RunID:        runID,
		Timestamp:    time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		Source:       "statements/march.csv",
		Transactions: 42,
		Positions:    2,
		FraudScore:   350,
		Confidence:   0.85,
		DurationMS:   127,
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	e := sampleEntry("run-1")
	row := MarshalEntry(e)
	require.Len(t, row, numFields)

	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshal_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "short"})
	assert.Error(t, err)
}

func TestUnmarshal_BadTimestamp(t *testing.T) {
	row := MarshalEntry(sampleEntry("run-1"))
	row[colTimestamp] = "yesterday"
	_, err := UnmarshalEntry(row)
	assert.ErrorContains(t, err, "parsing timestamp")
}

func TestAppendAndRead(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, Append(root, []Entry{sampleEntry("run-1")}))
	require.NoError(t, Append(root, []Entry{sampleEntry("run-2"), sampleEntry("run-3")}))

	entries, err := Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "run-1", entries[0].RunID)
	assert.Equal(t, "run-3", entries[2].RunID)
	assert.Equal(t, 350, entries[1].FraudScore)
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
