package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneythumb/moneythumb/internal/report"
	"github.com/moneythumb/moneythumb/internal/runlog"
)

const sampleCSV = `date,description,amount,balance
2025-03-03,STRIPE TRANSFER ST-1001,5000.00,12000.00
2025-03-04,ONDECK DAILY ACH PMT,-300.00,11700.00
2025-03-05,ONDECK DAILY ACH PMT,-300.00,11400.00
2025-03-06,ONDECK DAILY ACH PMT,-300.00,11100.00
2025-03-07,RENT PAYMENT MARCH,-2500.00,8600.00
2025-03-10,SQUARE INC DEPOSIT,1500.00,10100.00
2025-04-01,ZELLE PAYMENT FROM JOHNSON,900.00,11000.00
`

func writeStatement(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	statement := writeStatement(t)
	logDir := t.TempDir()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"analyze", statement,
		"--bank", "Test Bank",
		"--account", "****1234",
		"--log-dir", logDir,
	})
	require.NoError(t, cmd.Execute())

	var rep report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "Test Bank", rep.Account.Bank)
	assert.Equal(t, "1234", rep.Account.AccountLast4)
	assert.Equal(t, "2025-03-03", rep.Account.StatementPeriod.Start)
	assert.Equal(t, "2025-04-01", rep.Account.StatementPeriod.End)
	assert.Equal(t, 1, rep.Metrics.MCAPositionsDetected)
	require.Len(t, rep.MCAPositions, 1)
	assert.Equal(t, "ONDECK DAILY ACH", rep.MCAPositions[0].Lender)
	assert.InDelta(t, 300.0, rep.MCAPositions[0].DailyPayment, 0.001)
	assert.Len(t, rep.MonthlySummary, 2)

	entries, err := runlog.Read(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, rep.RunID, entries[0].RunID)
	assert.Equal(t, 7, entries[0].Transactions)
	assert.Equal(t, 1, entries[0].Positions)
}

func TestAnalyzeCommand_OutAndExportFiles(t *testing.T) {
	statement := writeStatement(t)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.json")
	exportPath := filepath.Join(dir, "classified.csv")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"analyze", statement,
		"--out", outPath,
		"--export", exportPath,
		"--log-dir", dir,
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.NotEmpty(t, rep.RunID)

	exported, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Contains(t, string(exported), report.Header)
	assert.Contains(t, string(exported), "ONDECK DAILY ACH PMT")
}

func TestAnalyzeCommand_UnknownFormat(t *testing.T) {
	statement := writeStatement(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"analyze", statement,
		"--format", "ofx",
		"--log-dir", t.TempDir(),
	})
	assert.Error(t, cmd.Execute())
}

func TestAnalyzeCommand_ExplicitConfigMissing(t *testing.T) {
	statement := writeStatement(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"analyze", statement,
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
	})
	assert.Error(t, cmd.Execute())
}

func TestPositionsCommand(t *testing.T) {
	statement := writeStatement(t)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"positions", statement})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "ONDECK DAILY ACH")
	assert.Contains(t, out.String(), "300.00")
	assert.Contains(t, out.String(), "6000.00")
}

func TestPositionsCommand_NoPositions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	csv := "date,description,amount,balance\n2025-03-03,STRIPE TRANSFER,500.00,900.00\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"positions", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "No MCA positions detected.")
}
