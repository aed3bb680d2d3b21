package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/chart"
	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/ledger"
	"github.com/faizmokh/jam/internal/ui"
)

func newChartCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		taskFlags  []string
		pdfPath    string
		export     bool
		outputJSON bool
		radius     int
	)

	cmd := &cobra.Command{
		Use:   "chart --task NAME=DURATION ...",
		Short: "Preview the report chart for a set of task durations.",
		Long: "chart runs one start/stop cycle per --task on a simulated clock and prints the resulting report. " +
			"Repeating a name accumulates its time, exactly as restarting a task in the TUI does.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(manager)
			if err != nil {
				return err
			}

			pairs, err := parseTaskPairs(taskFlags)
			if err != nil {
				return err
			}

			clock := ledger.NewManualClock(startOfDay(time.Now()))
			l := ledger.New(append(cfg.LedgerOptions(), ledger.WithClock(clock))...)
			if err := replay(l, clock, pairs); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report, err := l.Report()
			if err != nil {
				if errors.Is(err, ledger.ErrNoData) {
					fmt.Fprintln(out, ui.Describe(err, ""))
					return nil
				}
				return err
			}

			opts := cfg.ChartOptions()
			if cmd.Flags().Changed("radius") {
				if radius < 2 {
					return fmt.Errorf("radius must be at least 2")
				}
				opts.Radius = radius
			} else {
				opts.Radius = fitRadius(cmd, opts.Radius, len(report.Slices))
			}

			if outputJSON {
				if err := printReportJSON(out, report); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, chart.Render(report, opts))
			}

			if export && pdfPath == "" {
				if err := ctx.Err(); err != nil {
					return err
				}
				pdfPath, err = manager.EnsureReportPath(time.Now())
				if err != nil {
					return err
				}
			}
			if pdfPath != "" {
				if err := chart.ExportPDF(pdfPath, report, opts); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Chart saved to %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&taskFlags, "task", nil, "Task and duration as NAME=DURATION (repeatable), e.g. \"Review=1h30m\"")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write the chart to this PDF file")
	cmd.Flags().BoolVar(&export, "export", false, "Also write the chart to the reports directory")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the report dataset as JSON instead of a chart")
	cmd.Flags().IntVar(&radius, "radius", 0, "Pie radius in rows (default: config chart.radius, shrunk to fit the terminal)")

	return cmd
}
