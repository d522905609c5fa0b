package mcp

import (
	"context"

	"shift-analytics/internal/report"
	"shift-analytics/internal/stats"
	"shift-analytics/internal/visuals"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"
)

// AnalyzeResponse is the analyze_tickets payload.
type AnalyzeResponse struct {
	Result stats.AnalysisResult `json:"result"`
	Charts []string             `json:"charts,omitempty"`
}

// ShiftShare is one row of the shift distribution.
type ShiftShare struct {
	Shift      stats.Shift `json:"shift"`
	Tickets    int         `json:"tickets"`
	Percentage float64     `json:"percentage"`
}

// ShiftDistribution is the get_shift_distribution payload.
type ShiftDistribution struct {
	Period stats.Period `json:"period"`
	Total  int          `json:"total"`
	Shifts []ShiftShare `json:"shifts"`
	Chart  string       `json:"chart,omitempty"`
}

// MonthlyBreakdown is the get_monthly_breakdown payload.
type MonthlyBreakdown struct {
	Months                       []stats.MonthlyStat `json:"months"`
	Last6MonthsAvgResolutionTime float64             `json:"last6MonthsAvgResolutionTime"`
	MonthlyAverage               float64             `json:"monthlyAverage"`
	WeeklyTrend                  []stats.WeeklyStat  `json:"weeklyTrend"`
	Charts                       []string            `json:"charts,omitempty"`
}

func (s *Server) handleAnalyzeTickets(ctx context.Context, _ *sdk.CallToolRequest, in AnalyzeInput) (*sdk.CallToolResult, any, error) {
	run, err := s.analyze(ctx, toolAnalyzeTickets, in.Paths, in.AsOf, in.Period)
	if err != nil {
		return nil, nil, err
	}

	resp := AnalyzeResponse{Result: run.result}
	if s.cfg.EnableMermaidCharts {
		resp.Charts = report.Charts(run.result, report.Options{
			Period:     run.period,
			TrendWeeks: s.cfg.WeeklyTrendWeeks,
		})
	}
	return textResult(s.formatResult(resp)), nil, nil
}

func (s *Server) handleShiftDistribution(ctx context.Context, _ *sdk.CallToolRequest, in AnalyzeInput) (*sdk.CallToolResult, any, error) {
	run, err := s.analyze(ctx, toolShiftDistribution, in.Paths, in.AsOf, in.Period)
	if err != nil {
		return nil, nil, err
	}

	counts := stats.ShiftCountsFor(run.result, run.period)
	resp := ShiftDistribution{
		Period: run.period,
		Total:  counts.Total(),
		Shifts: lo.Map(stats.Shifts, func(sh stats.Shift, _ int) ShiftShare {
			return ShiftShare{
				Shift:      sh,
				Tickets:    counts[sh],
				Percentage: stats.RoundTo(counts.Percentage(sh), 1),
			}
		}),
	}
	if s.cfg.EnableMermaidCharts {
		resp.Chart = visuals.GenerateShiftPie(counts, run.period)
	}
	return textResult(s.formatResult(resp)), nil, nil
}

func (s *Server) handleMonthlyBreakdown(ctx context.Context, _ *sdk.CallToolRequest, in BreakdownInput) (*sdk.CallToolResult, any, error) {
	run, err := s.analyze(ctx, toolMonthlyBreakdown, in.Paths, in.AsOf, "")
	if err != nil {
		return nil, nil, err
	}

	res := run.result
	weeks := stats.WeeklyTrend(res, s.cfg.WeeklyTrendWeeks)
	resp := MonthlyBreakdown{
		Months:                       res.MonthlyStats,
		Last6MonthsAvgResolutionTime: stats.RoundTo(res.Last6MonthsAvgResolutionTime, 2),
		MonthlyAverage:               stats.RoundTo(stats.MonthlyAverageForPeriod(res, len(res.MonthlyStats)), 1),
		WeeklyTrend:                  weeks,
	}
	if s.cfg.EnableMermaidCharts {
		resp.Charts = lo.Compact([]string{
			visuals.GenerateMonthlyChart(res.MonthlyStats),
			visuals.GenerateWeeklyTrendChart(weeks),
		})
	}
	return textResult(s.formatResult(resp)), nil, nil
}
