package mcp

const (
	toolAnalyzeTickets    = "analyze_tickets"
	toolShiftDistribution = "get_shift_distribution"
	toolMonthlyBreakdown  = "get_monthly_breakdown"
)

const descAnalyzeTickets = "Aggregate one or more ticket exports (CSV or XLSX with CreateDate and ResolvedDate columns) into the full dashboard result: " +
	"year-to-date and rolling counts, averages, per-shift counts for every window, monthly and weekly buckets, and the current-month projection.\n\n" +
	"Timestamps are read as local wall-clock time in the configured TIMEZONE. Rows with missing or malformed dates, future creation dates, " +
	"or a resolution before creation are skipped and only counted in totalProcessedRows. " +
	"Guidance: compare totalValidRows with totalProcessedRows before drawing conclusions; a large gap means the export is dirty."

const descShiftDistribution = "Count tickets per support shift (Front/Back Half Days/Nights, Wednesday Days/Nights) for one window: " +
	"1mo (since the same day last month), 3mo (last 90 days), 6mo (six calendar months back) or all. " +
	"Shifts are listed in canonical order with their share of the window total."

const descMonthlyBreakdown = "Summarise the last six full calendar months (ticket count and mean resolution hours per month, empty months included), " +
	"plus the recent weekly trend. The current month is never part of the breakdown."

// AnalyzeInput selects the exports and the reference date of an analysis.
type AnalyzeInput struct {
	Paths  []string `json:"paths" jsonschema:"ticket export files (CSV or XLSX); relative paths resolve against DATA_PATH"`
	AsOf   string   `json:"as_of,omitempty" jsonschema:"reference date YYYY-MM-DD, analysed as of the end of that day; defaults to now"`
	Period string   `json:"period,omitempty" jsonschema:"shift window: 1mo, 3mo, 6mo or all (default all)"`
}

// BreakdownInput selects the exports and the reference date.
type BreakdownInput struct {
	Paths []string `json:"paths" jsonschema:"ticket export files (CSV or XLSX); relative paths resolve against DATA_PATH"`
	AsOf  string   `json:"as_of,omitempty" jsonschema:"reference date YYYY-MM-DD, analysed as of the end of that day; defaults to now"`
}
