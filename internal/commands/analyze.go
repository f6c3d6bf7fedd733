package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moneythumb/moneythumb/internal/config"
	"github.com/moneythumb/moneythumb/internal/ingest"
	"github.com/moneythumb/moneythumb/internal/logger"
	"github.com/moneythumb/moneythumb/internal/model"
	"github.com/moneythumb/moneythumb/internal/pipeline"
	"github.com/moneythumb/moneythumb/internal/report"
	"github.com/moneythumb/moneythumb/internal/runlog"
)

const defaultConfigFile = "moneythumb.yaml"

type analyzeOptions struct {
	bank       string
	account    string
	format     string
	configPath string
	outPath    string
	exportPath string
	logRoot    string
	verbose    bool
}

func newAnalyzeCommand() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze <statement-file>",
		Short: "Process a bank statement and print the underwriting report",
		Long: `Analyze runs a statement file through the full underwriting pipeline:
classification, MCA position detection, monthly aggregation, fraud
scoring and confidence blending. The report is printed as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.bank, "bank", "", "bank name for the statement")
	cmd.Flags().StringVar(&opts.account, "account", "", "masked account number, e.g. ****1234")
	cmd.Flags().StringVar(&opts.format, "format", "generic", "statement file format")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to moneythumb.yaml")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "write the JSON report to a file instead of stdout")
	cmd.Flags().StringVar(&opts.exportPath, "export", "", "write classified transactions to a CSV file")
	cmd.Flags().StringVar(&opts.logRoot, "log-dir", ".", "directory holding the run log")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runAnalyze(cmd *cobra.Command, source string, opts analyzeOptions) error {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New(level)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	registry := ingest.DefaultRegistry()
	meta := ingest.Metadata{BankName: opts.bank, AccountNumber: opts.account}
	ingester := pipeline.IngestFunc(func(path string) (*model.Statement, error) {
		stmt, err := registry.FromFile(opts.format, path, meta)
		if err != nil {
			return nil, err
		}
		if stmt.Account.BankName == "" {
			stmt.Account.BankName = cfg.BankFor(stmt.Account.LastFour())
		}
		return stmt, nil
	})

	p := pipeline.New(ingester, pipeline.WithLogger(log))
	resp, err := p.Process(source)
	if err != nil {
		return err
	}

	if err := writeReport(cmd, resp, opts.outPath); err != nil {
		return err
	}

	if opts.exportPath != "" {
		if err := exportTransactions(resp, opts.exportPath); err != nil {
			return err
		}
	}

	if resp.ConfidenceScore < cfg.Thresholds.ReviewConfidence {
		log.Warn().Float64("confidence", resp.ConfidenceScore).
			Float64("threshold", cfg.Thresholds.ReviewConfidence).
			Msg("low confidence, statement needs manual review")
	}
	if resp.Metrics.FraudScore >= cfg.Thresholds.FraudAlert {
		log.Warn().Int("fraud_score", resp.Metrics.FraudScore).
			Strs("factors", resp.FraudFactors).
			Msg("fraud score at or above alert threshold")
	}

	entry := runlog.Entry{
		RunID:        resp.RunID,
		Timestamp:    time.Now(),
		Source:       source,
		Transactions: len(resp.Transactions),
		Positions:    len(resp.MCAPositions),
		FraudScore:   resp.Metrics.FraudScore,
		Confidence:   resp.ConfidenceScore,
		DurationMS:   resp.ProcessingTime.Milliseconds(),
	}
	if err := runlog.Append(opts.logRoot, []runlog.Entry{entry}); err != nil {
		log.Warn().Err(err).Msg("could not append to run log")
	}

	return nil
}

// loadConfig reads the config from an explicit path, or from
// moneythumb.yaml in the working directory if present. A missing default
// file is not an error; a missing explicit path is.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigFile); os.IsNotExist(err) {
		return config.Default(""), nil
	}
	return config.Load(defaultConfigFile)
}

func writeReport(cmd *cobra.Command, resp *model.Response, outPath string) error {
	if outPath == "" {
		return report.WriteJSON(cmd.OutOrStdout(), resp)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := report.WriteJSON(f, resp); err != nil {
		return err
	}
	return f.Close()
}

func exportTransactions(resp *model.Response, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := report.WriteTransactions(f, resp.Transactions); err != nil {
		return err
	}
	return f.Close()
}
