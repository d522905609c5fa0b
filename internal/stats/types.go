package stats

import (
	"time"
)

// Canonical column names every RawRecord must carry.
const (
	FieldCreateDate   = "CreateDate"
	FieldResolvedDate = "ResolvedDate"
)

// RawRecord is one decoded row of a ticket export: column name to cell text.
// Columns other than CreateDate and ResolvedDate are passed through untouched.
type RawRecord map[string]string

// ProcessedTicket is the validated, classified form of a RawRecord.
type ProcessedTicket struct {
	CreateDate  time.Time `json:"createDate"`
	ResolveDate time.Time `json:"resolveDate"`
	ResolveTime float64   `json:"resolveTime"` // hours
	Shift       Shift     `json:"shift"`
	MonthKey    string    `json:"monthKey"`
	WeekKey     string    `json:"weekKey"`
}

// MonthlyStat summarises a single full calendar month.
type MonthlyStat struct {
	MonthStart       string  `json:"monthStart"` // YYYY-MM-01
	Label            string  `json:"label"`      // e.g. "Dec 2024"
	TotalTickets     int     `json:"totalTickets"`
	AvgResolutionHrs float64 `json:"avgResolutionHrs"`
}

// MonthlySummary is the legacy shape of MonthlyStat kept for older consumers.
//
// Deprecated: use MonthlyStat.
type MonthlySummary struct {
	Month      string  `json:"month"`
	Tickets    int     `json:"tickets"`
	AvgResolve float64 `json:"avgResolve"`
}

// WeeklyStat is a single point of the weekly trend.
type WeeklyStat struct {
	WeekStart        string  `json:"weekStart"`
	Tickets          int     `json:"tickets"`
	AvgResolutionHrs float64 `json:"avgResolutionHrs"`
}

// AnalysisResult is the immutable snapshot produced by one Aggregate call.
type AnalysisResult struct {
	YTDCount                     int     `json:"ytdCount"`
	Last6MonthsCount             int     `json:"last6MonthsCount"`
	Last6MonthsAvgResolutionTime float64 `json:"last6MonthsAvgResolutionTime"`
	Last4WeeksCount              int     `json:"last4WeeksCount"`
	AvgMonthly                   float64 `json:"avgMonthly"`
	AvgWeekly                    float64 `json:"avgWeekly"`
	AvgResolutionTime            float64 `json:"avgResolutionTime"`

	ShiftCounts            ShiftCounts `json:"shiftCounts"`
	Last1MonthShiftCounts  ShiftCounts `json:"last1MonthShiftCounts"`
	Last3MonthsShiftCounts ShiftCounts `json:"last3MonthsShiftCounts"`
	Last6MonthsShiftCounts ShiftCounts `json:"last6MonthsShiftCounts"`

	MonthlyTickets      map[string]int       `json:"monthlyTickets"`
	MonthlyResolveTimes map[string][]float64 `json:"monthlyResolveTimes"`
	// Last 6 full calendar months, oldest first.
	MonthlyStats   []MonthlyStat    `json:"monthlyStats"`
	MonthlyLastSix []MonthlySummary `json:"monthlyLastSix"`

	WeeklyTickets      map[string]int       `json:"weeklyTickets"`
	WeeklyResolveTimes map[string][]float64 `json:"weeklyResolveTimes"`

	CurrentMonthCount     int     `json:"currentMonthCount"`
	CurrentMonthProgress  float64 `json:"currentMonthProgress"`
	ProjectedCurrentMonth float64 `json:"projectedCurrentMonth"`
	TrendVsAverage        float64 `json:"trendVsAverage"`
	TrendPercentage       float64 `json:"trendPercentage"`

	TotalProcessedRows int               `json:"totalProcessedRows"`
	TotalValidRows     int               `json:"totalValidRows"`
	ProcessedTickets   []ProcessedTicket `json:"processedTickets"`

	Last6CalendarMonthsCount int `json:"last6CalendarMonthsCount"`
	Last4CalendarWeeksCount  int `json:"last4CalendarWeeksCount"`

	// Windows the result was computed against.
	Windows Windows `json:"windows"`
}
