package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moneythumb.yaml")

	cfg := Default("Acme Funding")
	cfg.BankAccounts = []BankAccount{
		{Name: "Operating", Bank: "First National", LastFour: "1234"},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Funding", loaded.Business.Name)
	assert.Equal(t, 0.70, loaded.Thresholds.ReviewConfidence)
	assert.Equal(t, 500, loaded.Thresholds.FraudAlert)
	require.Len(t, loaded.BankAccounts, 1)
	assert.Equal(t, "1234", loaded.BankAccounts[0].LastFour)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moneythumb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestBankFor(t *testing.T) {
	cfg := Default("Acme Funding")
	cfg.BankAccounts = []BankAccount{
		{Name: "Operating", Bank: "First National", LastFour: "1234"},
		{Name: "Payroll", Bank: "Metro", LastFour: "9900"},
	}

	assert.Equal(t, "Metro", cfg.BankFor("9900"))
	assert.Empty(t, cfg.BankFor("0000"))
}
