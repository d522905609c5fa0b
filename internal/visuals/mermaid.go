package visuals

import (
	"fmt"
	"math"
	"strings"
	"time"

	"shift-analytics/internal/stats"
)

// GenerateMonthlyChart creates a Mermaid xychart-beta for the full-month summary:
// ticket volume as bars, mean resolution hours as a line.
func GenerateMonthlyChart(months []stats.MonthlyStat) string {
	if len(months) == 0 {
		return ""
	}

	var labels []string
	var tickets []string
	var resolve []string
	maxY := 0.0

	for _, m := range months {
		labels = append(labels, fmt.Sprintf("\"%s\"", m.Label))
		tickets = append(tickets, fmt.Sprintf("%d", m.TotalTickets))
		resolve = append(resolve, fmt.Sprintf("%.1f", m.AvgResolutionHrs))
		maxY = math.Max(maxY, math.Max(float64(m.TotalTickets), m.AvgResolutionHrs))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Monthly Breakdown (Last 6 Full Months)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Tickets / Hours\" 0 --> %d\n", yCeiling(maxY)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(tickets, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(resolve, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateShiftPie creates a Mermaid pie chart of ticket volume per shift.
// Shifts are listed in canonical order; empty shifts are omitted.
func GenerateShiftPie(counts stats.ShiftCounts, period stats.Period) string {
	if counts.Total() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString(fmt.Sprintf("pie title Shift Distribution (%s)\n", periodTitle(period)))
	for _, s := range stats.Shifts {
		if counts[s] == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("    \"%s\" : %d\n", s, counts[s]))
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateWeeklyTrendChart creates a Mermaid line chart of weekly ticket volume.
func GenerateWeeklyTrendChart(weeks []stats.WeeklyStat) string {
	if len(weeks) == 0 {
		return ""
	}

	var labels []string
	var values []string
	maxVal := 0

	// Mermaid xychart starts overlapping labels beyond roughly 60 points.
	subsampleRate := 1
	if len(weeks) > 60 {
		subsampleRate = int(math.Ceil(float64(len(weeks)) / 60.0))
	}

	for i, w := range weeks {
		if w.Tickets > maxVal {
			maxVal = w.Tickets
		}
		if i%subsampleRate == 0 || i == len(weeks)-1 {
			labels = append(labels, fmt.Sprintf("\"%s\"", weekLabel(w.WeekStart)))
			values = append(values, fmt.Sprintf("%d", w.Tickets))
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Weekly Trend (Last %d Weeks)\"\n", len(weeks)))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Tickets\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

func yCeiling(maxY float64) int {
	return int(math.Max(1, math.Ceil(maxY*1.2)))
}

// weekLabel shortens "2025-06-02" to "Jun 02".
func weekLabel(weekStart string) string {
	t, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return weekStart
	}
	return t.Format("Jan 02")
}

func periodTitle(p stats.Period) string {
	switch p {
	case stats.PeriodLast1Month:
		return "Last Month"
	case stats.PeriodLast3Months:
		return "Last 3 Months"
	case stats.PeriodLast6Months:
		return "Last 6 Months"
	default:
		return "All Time"
	}
}
