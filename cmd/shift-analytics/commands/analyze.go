package commands

import (
	"fmt"
	"time"

	"shift-analytics/internal/ingest"
	"shift-analytics/internal/report"
	"shift-analytics/internal/stats"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var analyzeOpts struct {
	asOf   string
	format string
	period string
	charts bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file> [file...]",
	Short: "Aggregate ticket exports and print the summary",
	Example: `  shift-analytics analyze tickets.csv
  shift-analytics analyze q1.xlsx q2.xlsx --as-of 2025-06-30 --period 3mo --charts
  shift-analytics analyze tickets.csv --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := stats.ParsePeriod(analyzeOpts.period)
		if err != nil {
			return err
		}
		now, err := cfg.ParseAsOf(analyzeOpts.asOf)
		if err != nil {
			return err
		}

		logger := log.With().Str("run_id", uuid.NewString()).Logger()
		start := time.Now()

		records, err := ingest.LoadFiles(cmd.Context(), args, cfg.Columns)
		if err != nil {
			return fmt.Errorf("failed to load ticket exports: %w", err)
		}
		res := stats.Aggregate(records, now)

		logger.Info().
			Int("files", len(args)).
			Int("processed", res.TotalProcessedRows).
			Int("valid", res.TotalValidRows).
			Time("as_of", now).
			Dur("elapsed", time.Since(start)).
			Msg("Analysis complete")

		out := cmd.OutOrStdout()
		switch analyzeOpts.format {
		case "json":
			return report.WriteJSON(out, res)
		case "text":
			return report.WriteText(out, res, report.Options{
				Period:     period,
				TrendWeeks: cfg.WeeklyTrendWeeks,
				WithCharts: analyzeOpts.charts || cfg.EnableMermaidCharts,
			})
		default:
			return fmt.Errorf("unknown format %q (want text or json)", analyzeOpts.format)
		}
	},
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeOpts.asOf, "as-of", "", "reference date (YYYY-MM-DD), analysed as of the end of that day; defaults to now")
	f.StringVarP(&analyzeOpts.format, "format", "f", "text", "output format: text or json")
	f.StringVarP(&analyzeOpts.period, "period", "p", "all", "shift table window: 1mo, 3mo, 6mo or all")
	f.BoolVar(&analyzeOpts.charts, "charts", false, "append Mermaid charts to the text report")
}
