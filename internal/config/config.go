package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level moneythumb.yaml configuration.
type Config struct {
	Business     BusinessConfig   `yaml:"business"`
	Thresholds   ThresholdsConfig `yaml:"thresholds"`
	BankAccounts []BankAccount    `yaml:"bank_accounts,omitempty"`
}

// BusinessConfig identifies the underwriting entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// ThresholdsConfig controls when a processed statement is flagged for
// manual review.
type ThresholdsConfig struct {
	ReviewConfidence float64 `yaml:"review_confidence"` // flag below this confidence
	FraudAlert       int     `yaml:"fraud_alert"`       // flag at or above this Thumbprint score
}

// BankAccount maps a known account to its bank label.
type BankAccount struct {
	Name     string `yaml:"name"`
	Bank     string `yaml:"bank"`
	LastFour string `yaml:"last_four"`
}

// Load reads a moneythumb.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Thresholds: ThresholdsConfig{
			ReviewConfidence: 0.70,
			FraudAlert:       500,
		},
	}
}

// BankFor returns the bank label for an account's last four digits, or ""
// if the account is not configured.
func (c *Config) BankFor(lastFour string) string {
	for _, a := range c.BankAccounts {
		if a.LastFour == lastFour {
			return a.Bank
		}
	}
	return ""
}
