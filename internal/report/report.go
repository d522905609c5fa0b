// Package report renders an AnalysisResult for terminals and pipes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"shift-analytics/internal/stats"
	"shift-analytics/internal/visuals"
)

// Options controls the text rendering.
type Options struct {
	Period     stats.Period
	TrendWeeks int
	WithCharts bool
}

// WriteJSON writes the full result as indented JSON.
func WriteJSON(w io.Writer, res stats.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteText writes the headline cards, the shift and monthly tables and a
// row-count footer.
func WriteText(w io.Writer, res stats.AnalysisResult, opts Options) error {
	var sb strings.Builder

	writeCards(&sb, res)
	sb.WriteString("\n")
	writeShiftTable(&sb, stats.ShiftCountsFor(res, opts.Period), opts.Period)
	sb.WriteString("\n")
	writeMonthlyTable(&sb, res.MonthlyStats)
	sb.WriteString("\n")
	writeTrend(&sb, res)

	fmt.Fprintf(&sb, "\nProcessed %d valid rows out of %d total rows\n", res.TotalValidRows, res.TotalProcessedRows)
	fmt.Fprintf(&sb, "YTD: %d | Last 6 Months: %d | Last 4 Weeks: %d\n",
		res.YTDCount, res.Last6CalendarMonthsCount, res.Last4CalendarWeeksCount)

	if opts.WithCharts {
		for _, chart := range Charts(res, opts) {
			sb.WriteString("\n")
			sb.WriteString(chart)
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Charts returns the non-empty Mermaid charts for res.
func Charts(res stats.AnalysisResult, opts Options) []string {
	weeks := opts.TrendWeeks
	if weeks <= 0 {
		weeks = 12
	}
	var out []string
	for _, c := range []string{
		visuals.GenerateShiftPie(stats.ShiftCountsFor(res, opts.Period), opts.Period),
		visuals.GenerateMonthlyChart(res.MonthlyStats),
		visuals.GenerateWeeklyTrendChart(stats.WeeklyTrend(res, weeks)),
	} {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func writeCards(sb *strings.Builder, res stats.AnalysisResult) {
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "YTD Total\tMonthly Average\tWeekly Average\tAvg Resolution Time\n")
	fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.1fh\n", res.YTDCount, res.AvgMonthly, res.AvgWeekly, res.AvgResolutionTime)
	_ = tw.Flush()
}

func writeShiftTable(sb *strings.Builder, counts stats.ShiftCounts, period stats.Period) {
	fmt.Fprintf(sb, "Shift Distribution (%s)\n", periodName(period))
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Shift\tTickets\tPercentage\t\n")
	for _, s := range stats.Shifts {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t\n", s, counts[s], counts.Percentage(s))
	}
	_ = tw.Flush()
}

func writeMonthlyTable(sb *strings.Builder, months []stats.MonthlyStat) {
	sb.WriteString("Monthly Breakdown (last 6 full months)\n")
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Month\tTickets\tAvg Resolution Time\t\n")
	for _, m := range months {
		fmt.Fprintf(tw, "%s\t%d\t%.1f hours\t\n", m.Label, m.TotalTickets, m.AvgResolutionHrs)
	}
	_ = tw.Flush()
}

func writeTrend(sb *strings.Builder, res stats.AnalysisResult) {
	fmt.Fprintf(sb, "Current month: %d tickets at %.0f%% of month, projected %.1f (%+.1f%% vs monthly average)\n",
		res.CurrentMonthCount, res.CurrentMonthProgress*100, res.ProjectedCurrentMonth, res.TrendPercentage)
}

func periodName(p stats.Period) string {
	if p == "" {
		return string(stats.PeriodAll)
	}
	return string(p)
}
