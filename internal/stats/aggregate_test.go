package stats

import (
	"math"
	"reflect"
	"testing"
	"time"
)

var refNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func rec(create, resolved string) RawRecord {
	return RawRecord{FieldCreateDate: create, FieldResolvedDate: resolved, "Title": "Flex conveyor"}
}

// sampleRecords spans three months: two tickets in April, four in May and
// three in the first week of June (2025-06-02 is a Monday).
func sampleRecords() []RawRecord {
	return []RawRecord{
		rec("2025-04-10T10:00:00", "2025-04-10T12:00:00"),
		rec("2025-04-11T20:00:00", "2025-04-12T00:00:00"),
		rec("2025-05-05T09:00:00", "2025-05-05T10:00:00"),
		rec("2025-05-06T09:00:00", "2025-05-06T10:00:00"),
		rec("2025-05-12T09:00:00", "2025-05-12T10:00:00"),
		rec("2025-05-13T09:00:00", "2025-05-13T10:00:00"),
		rec("2025-06-02T08:00:00", "2025-06-02T09:30:00"),
		rec("2025-06-03T17:00:00", "2025-06-03T18:00:00"),
		rec("2025-06-04T11:00:00", "2025-06-04T11:30:00"),
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	res := Aggregate(nil, refNow)

	if res.TotalProcessedRows != 0 || res.TotalValidRows != 0 {
		t.Errorf("expected zero rows, got processed=%d valid=%d", res.TotalProcessedRows, res.TotalValidRows)
	}
	if res.AvgResolutionTime != 0 || res.AvgMonthly != 0 || res.AvgWeekly != 0 {
		t.Errorf("expected zero averages, got %+v", res)
	}
	if res.TrendPercentage != 0 || res.ProjectedCurrentMonth != 0 {
		t.Errorf("expected zero projections, got projected=%v trend=%v", res.ProjectedCurrentMonth, res.TrendPercentage)
	}
	for _, counts := range []ShiftCounts{res.ShiftCounts, res.Last1MonthShiftCounts, res.Last3MonthsShiftCounts, res.Last6MonthsShiftCounts} {
		if len(counts) != len(Shifts) {
			t.Fatalf("expected %d shift keys, got %d", len(Shifts), len(counts))
		}
		for _, s := range Shifts {
			if v, ok := counts[s]; !ok || v != 0 {
				t.Errorf("shift %s: got %d (present=%v), want 0", s, v, ok)
			}
		}
	}
	if len(res.MonthlyStats) != 6 {
		t.Errorf("expected 6 monthly stats, got %d", len(res.MonthlyStats))
	}
	if res.Last6MonthsAvgResolutionTime != 0 {
		t.Errorf("expected 0 six-month resolution, got %v", res.Last6MonthsAvgResolutionTime)
	}
}

func TestAggregate_WednesdayScenario(t *testing.T) {
	now := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)
	res := Aggregate([]RawRecord{rec("2025-01-15T10:00:00", "2025-01-15T14:00:00")}, now)

	if res.TotalValidRows != 1 {
		t.Fatalf("expected 1 valid row, got %d", res.TotalValidRows)
	}
	ticket := res.ProcessedTickets[0]
	if ticket.Shift != WednesdayDays {
		t.Errorf("shift = %s, want %s", ticket.Shift, WednesdayDays)
	}
	if ticket.ResolveTime != 4 {
		t.Errorf("resolution = %v, want 4", ticket.ResolveTime)
	}
	if ticket.MonthKey != "2025-01" {
		t.Errorf("month key = %s, want 2025-01", ticket.MonthKey)
	}
	if ticket.WeekKey != "2025-01-13" {
		t.Errorf("week key = %s, want 2025-01-13", ticket.WeekKey)
	}
	if res.ShiftCounts[WednesdayDays] != 1 || res.YTDCount != 1 {
		t.Errorf("expected counted in shift and YTD, got %+v ytd=%d", res.ShiftCounts, res.YTDCount)
	}
	// The rolling window opens 2024-12-17 12:00.
	if res.Last6MonthsCount != 1 {
		t.Errorf("expected rolling six-month count 1, got %d", res.Last6MonthsCount)
	}
	if res.Last1MonthShiftCounts.Total() != 0 || res.Last3MonthsShiftCounts.Total() != 0 {
		t.Errorf("January ticket should be outside the 1 and 3 month windows")
	}
}

func TestAggregate_SkipsMalformedRows(t *testing.T) {
	records := []RawRecord{
		rec("2025-05-01T10:00:00", "2025-05-01T11:00:00"), // valid
		{FieldResolvedDate: "2025-05-01T11:00:00"},        // missing create
		rec("2025-05-01T10:00:00", ""),                    // empty resolve
		rec("2025-05-01 10:00:00", "2025-05-01T11:00:00"), // bad shape
		rec("1899-05-01T10:00:00", "2025-05-01T11:00:00"), // bad year
		rec("2025-06-15T12:00:01", "2025-06-15T13:00:00"), // future create
		rec("2025-05-02T10:00:00", "2025-05-02T09:00:00"), // negative span
		rec("2025-06-15T12:00:00", "2025-06-15T12:00:00"), // exactly now, zero span
	}

	res := Aggregate(records, refNow)

	if res.TotalProcessedRows != len(records) {
		t.Errorf("processed = %d, want %d", res.TotalProcessedRows, len(records))
	}
	if res.TotalValidRows != 2 {
		t.Errorf("valid = %d, want 2", res.TotalValidRows)
	}
	if len(res.ProcessedTickets) != res.TotalValidRows {
		t.Errorf("processed tickets = %d, want %d", len(res.ProcessedTickets), res.TotalValidRows)
	}
	if res.AvgResolutionTime != 0.5 {
		t.Errorf("avg resolution = %v, want 0.5", res.AvgResolutionTime)
	}
}

func TestAggregate_FutureDatedExcluded(t *testing.T) {
	res := Aggregate([]RawRecord{rec("2025-07-01T10:00:00", "2025-07-01T11:00:00")}, refNow)
	if res.TotalValidRows != 0 || res.TotalProcessedRows != 1 {
		t.Errorf("expected 1 processed / 0 valid, got %d / %d", res.TotalProcessedRows, res.TotalValidRows)
	}
	if res.ShiftCounts.Total() != 0 {
		t.Errorf("future ticket leaked into shift counts: %v", res.ShiftCounts)
	}
}

func TestAggregate_Projection(t *testing.T) {
	res := Aggregate(sampleRecords(), refNow)

	if res.TotalValidRows != 9 {
		t.Fatalf("valid = %d, want 9", res.TotalValidRows)
	}
	if res.CurrentMonthCount != 3 {
		t.Errorf("current month = %d, want 3", res.CurrentMonthCount)
	}
	if res.CurrentMonthProgress != 0.5 {
		t.Errorf("progress = %v, want 0.5", res.CurrentMonthProgress)
	}
	if res.AvgMonthly != 3 {
		t.Errorf("avg monthly = %v, want 3", res.AvgMonthly)
	}
	if res.AvgWeekly != 2.25 {
		t.Errorf("avg weekly = %v, want 2.25", res.AvgWeekly)
	}
	if res.ProjectedCurrentMonth != 6 {
		t.Errorf("projected = %v, want 6", res.ProjectedCurrentMonth)
	}
	if res.TrendVsAverage != 3 {
		t.Errorf("trend vs average = %v, want 3", res.TrendVsAverage)
	}
	if res.TrendPercentage != 100 {
		t.Errorf("trend = %v%%, want 100%%", res.TrendPercentage)
	}
}

func TestAggregate_Windows(t *testing.T) {
	res := Aggregate(sampleRecords(), refNow)

	if res.YTDCount != 9 {
		t.Errorf("ytd = %d, want 9", res.YTDCount)
	}
	if res.Last6MonthsCount != 9 {
		t.Errorf("rolling six months = %d, want 9", res.Last6MonthsCount)
	}
	// Last1MonthStart is 2025-05-15 00:00, so only June tickets count.
	if got := res.Last1MonthShiftCounts.Total(); got != 3 {
		t.Errorf("last 1 month = %d, want 3", got)
	}
	if got := res.Last3MonthsShiftCounts.Total(); got != 9 {
		t.Errorf("last 3 months = %d, want 9", got)
	}
	if got := res.Last6MonthsShiftCounts.Total(); got != 9 {
		t.Errorf("last 6 months = %d, want 9", got)
	}
	if res.Last6CalendarMonthsCount != 9 || res.Last4CalendarWeeksCount != 9 || res.Last4WeeksCount != 9 {
		t.Errorf("calendar counts = %d/%d/%d, want 9/9/9", res.Last6CalendarMonthsCount, res.Last4CalendarWeeksCount, res.Last4WeeksCount)
	}

	wantWeeks := map[string]int{"2025-04-07": 2, "2025-05-05": 2, "2025-05-12": 2, "2025-06-02": 3}
	if !reflect.DeepEqual(res.WeeklyTickets, wantWeeks) {
		t.Errorf("weekly = %v, want %v", res.WeeklyTickets, wantWeeks)
	}
	wantMonths := map[string]int{"2025-04": 2, "2025-05": 4, "2025-06": 3}
	if !reflect.DeepEqual(res.MonthlyTickets, wantMonths) {
		t.Errorf("monthly = %v, want %v", res.MonthlyTickets, wantMonths)
	}
	if !reflect.DeepEqual(res.MonthlyResolveTimes["2025-04"], []float64{2, 4}) {
		t.Errorf("april samples = %v, want [2 4]", res.MonthlyResolveTimes["2025-04"])
	}
}

func TestAggregate_WindowBoundaries(t *testing.T) {
	records := []RawRecord{
		rec("2024-12-31T23:59:59", "2025-01-01T01:00:00"), // before YTD
		rec("2025-01-01T00:00:00", "2025-01-01T01:00:00"), // YTD start, inclusive
		rec("2024-12-15T11:59:59", "2024-12-15T13:00:00"), // one second before rolling start
		rec("2024-12-15T12:00:00", "2024-12-15T13:00:00"), // rolling start, inclusive
		rec("2025-05-14T23:59:59", "2025-05-15T01:00:00"), // before 1 month start
		rec("2025-05-15T00:00:00", "2025-05-15T01:00:00"), // 1 month start, inclusive
		rec("2025-06-01T00:00:00", "2025-06-01T01:00:00"), // current month start
	}

	res := Aggregate(records, refNow)

	if res.YTDCount != 4 {
		t.Errorf("ytd = %d, want 4", res.YTDCount)
	}
	if res.Last6MonthsCount != 6 {
		t.Errorf("rolling six months = %d, want 6", res.Last6MonthsCount)
	}
	if got := res.Last1MonthShiftCounts.Total(); got != 2 {
		t.Errorf("last 1 month = %d, want 2", got)
	}
	if res.CurrentMonthCount != 1 {
		t.Errorf("current month = %d, want 1", res.CurrentMonthCount)
	}
}

func TestAggregate_ShiftInvariants(t *testing.T) {
	res := Aggregate(sampleRecords(), refNow)

	for name, counts := range map[string]ShiftCounts{
		"all": res.ShiftCounts,
		"1mo": res.Last1MonthShiftCounts,
		"3mo": res.Last3MonthsShiftCounts,
		"6mo": res.Last6MonthsShiftCounts,
	} {
		if len(counts) != len(Shifts) {
			t.Errorf("%s: %d keys, want %d", name, len(counts), len(Shifts))
		}
	}
	if res.ShiftCounts.Total() != res.TotalValidRows {
		t.Errorf("shift total %d != valid rows %d", res.ShiftCounts.Total(), res.TotalValidRows)
	}

	// Thu 10:00, Fri 20:00, four Mon/Tue 09:00, Mon 08:00, Tue 17:00, Wed 11:00.
	want := ShiftCounts{
		FrontHalfDays:   5,
		FrontHalfNights: 1,
		BackHalfDays:    1,
		BackHalfNights:  1,
		WednesdayDays:   1,
		WednesdayNights: 0,
	}
	if !reflect.DeepEqual(res.ShiftCounts, want) {
		t.Errorf("shift counts = %v, want %v", res.ShiftCounts, want)
	}
}

func TestAggregate_AverageResolution(t *testing.T) {
	res := Aggregate(sampleRecords(), refNow)

	var sum float64
	for _, tk := range res.ProcessedTickets {
		sum += tk.ResolveDate.Sub(tk.CreateDate).Hours()
	}
	want := sum / float64(len(res.ProcessedTickets))
	if math.Abs(res.AvgResolutionTime-want) > 1e-9 {
		t.Errorf("avg resolution = %v, want %v", res.AvgResolutionTime, want)
	}
}

func TestAggregate_MonthlyStats(t *testing.T) {
	res := Aggregate(sampleRecords(), refNow)

	if len(res.MonthlyStats) != 6 {
		t.Fatalf("expected 6 months, got %d", len(res.MonthlyStats))
	}
	wantStarts := []string{"2024-12-01", "2025-01-01", "2025-02-01", "2025-03-01", "2025-04-01", "2025-05-01"}
	for i, m := range res.MonthlyStats {
		if m.MonthStart != wantStarts[i] {
			t.Errorf("month %d start = %s, want %s", i, m.MonthStart, wantStarts[i])
		}
	}

	april := res.MonthlyStats[4]
	if april.Label != "Apr 2025" || april.TotalTickets != 2 || april.AvgResolutionHrs != 3 {
		t.Errorf("unexpected April stat: %+v", april)
	}
	may := res.MonthlyStats[5]
	if may.TotalTickets != 4 || may.AvgResolutionHrs != 1 {
		t.Errorf("unexpected May stat: %+v", may)
	}
	if res.MonthlyStats[0].TotalTickets != 0 || res.MonthlyStats[0].AvgResolutionHrs != 0 {
		t.Errorf("empty month should be zero: %+v", res.MonthlyStats[0])
	}

	// Unweighted: (0+0+0+0+3+1)/6.
	if want := 4.0 / 6.0; math.Abs(res.Last6MonthsAvgResolutionTime-want) > 1e-9 {
		t.Errorf("six-month resolution = %v, want %v", res.Last6MonthsAvgResolutionTime, want)
	}

	if len(res.MonthlyLastSix) != 6 || res.MonthlyLastSix[4].Month != "Apr 2025" || res.MonthlyLastSix[4].Tickets != 2 {
		t.Errorf("legacy summary mismatch: %+v", res.MonthlyLastSix)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	records := sampleRecords()
	first := Aggregate(records, refNow)
	second := Aggregate(records, refNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate is not deterministic for identical input")
	}
}

func TestProcessRecord_ShiftBoundaries(t *testing.T) {
	tests := []struct {
		create   string
		expected Shift
	}{
		{"2025-01-15T04:30:00", WednesdayDays},
		{"2025-01-15T16:30:00", WednesdayNights},
		{"2025-01-16T04:29:59", BackHalfNights},
		{"2025-01-19T16:29:59", FrontHalfDays},
	}

	for _, tt := range tests {
		t.Run(tt.create, func(t *testing.T) {
			ticket, ok := ProcessRecord(rec(tt.create, "2025-01-20T00:00:00"), refNow)
			if !ok {
				t.Fatalf("expected record to be valid")
			}
			if ticket.Shift != tt.expected {
				t.Errorf("shift = %s, want %s", ticket.Shift, tt.expected)
			}
		})
	}
}
