package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moneythumb/moneythumb/internal/analyze"
	"github.com/moneythumb/moneythumb/internal/classify"
	"github.com/moneythumb/moneythumb/internal/ingest"
)

func newPositionsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "positions <statement-file>",
		Short: "List detected MCA positions in a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPositions(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "statement file format")

	return cmd
}

func runPositions(cmd *cobra.Command, source, format string) error {
	stmt, err := ingest.DefaultRegistry().FromFile(format, source, ingest.Metadata{})
	if err != nil {
		return err
	}

	classified := classify.All(stmt.Transactions)
	positions := analyze.DetectPositions(classified)

	if len(positions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No MCA positions detected.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tLENDER\tDAILY\tMONTHLY")
	for _, p := range positions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			p.PositionNumber, p.LenderName,
			p.DailyPayment.StringFixed(2),
			analyze.MonthlyPayment(p).StringFixed(2))
	}
	return w.Flush()
}
