package stats

import (
	"github.com/samber/lo"
)

// BuildMonthlyStats summarises every month of window, oldest first. Months
// without data appear with zero tickets and zero resolution time.
func BuildMonthlyStats(monthly map[string]int, resolveTimes map[string][]float64, window AnalysisWindow) []MonthlyStat {
	starts := window.Subdivide()
	out := make([]MonthlyStat, 0, len(starts))

	for _, start := range starts {
		key := MonthKey(start)
		out = append(out, MonthlyStat{
			MonthStart:       key + "-01",
			Label:            window.GenerateLabel(start),
			TotalTickets:     monthly[key],
			AvgResolutionHrs: RoundTo(Mean(resolveTimes[key]), 2),
		})
	}
	return out
}

// meanMonthlyResolution is the unweighted mean of each month's average.
func meanMonthlyResolution(months []MonthlyStat) float64 {
	if len(months) == 0 {
		return 0
	}
	return lo.SumBy(months, func(m MonthlyStat) float64 { return m.AvgResolutionHrs }) / float64(len(months))
}

func legacySummaries(months []MonthlyStat) []MonthlySummary {
	return lo.Map(months, func(m MonthlyStat, _ int) MonthlySummary {
		return MonthlySummary{
			Month:      m.Label,
			Tickets:    m.TotalTickets,
			AvgResolve: m.AvgResolutionHrs,
		}
	})
}
