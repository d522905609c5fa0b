package stats

import (
	"fmt"
	"strings"
)

// Period selects one of the shift-count windows of an AnalysisResult.
type Period string

const (
	PeriodLast1Month  Period = "1mo"
	PeriodLast3Months Period = "3mo"
	PeriodLast6Months Period = "6mo"
	PeriodAll         Period = "all"
)

// ParsePeriod accepts "1mo", "3mo", "6mo" or "all"; empty means all.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodLast1Month, PeriodLast3Months, PeriodLast6Months, PeriodAll:
		return p, nil
	case "":
		return PeriodAll, nil
	default:
		return "", fmt.Errorf("unknown period %q (want 1mo, 3mo, 6mo or all)", s)
	}
}

// ShiftCountsFor returns the shift counts of the requested window.
func ShiftCountsFor(res AnalysisResult, p Period) ShiftCounts {
	switch p {
	case PeriodLast1Month:
		return res.Last1MonthShiftCounts
	case PeriodLast3Months:
		return res.Last3MonthsShiftCounts
	case PeriodLast6Months:
		return res.Last6MonthsShiftCounts
	default:
		return res.ShiftCounts
	}
}

// MonthlyAverageForPeriod averages the latest n month buckets that have
// data, always dividing by n.
func MonthlyAverageForPeriod(res AnalysisResult, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sumLatest(res.MonthlyTickets, n)) / float64(n)
}

// WeeklyTrend returns the latest n week buckets with data, oldest first.
func WeeklyTrend(res AnalysisResult, n int) []WeeklyStat {
	if n <= 0 {
		return nil
	}
	keys := latestKeys(res.WeeklyTickets, n)
	out := make([]WeeklyStat, 0, len(keys))
	for _, k := range keys {
		out = append(out, WeeklyStat{
			WeekStart:        k,
			Tickets:          res.WeeklyTickets[k],
			AvgResolutionHrs: RoundTo(Mean(res.WeeklyResolveTimes[k]), 1),
		})
	}
	return out
}
