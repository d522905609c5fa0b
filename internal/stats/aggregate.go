package stats

import (
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// accumulator is the running state of a single Aggregate call.
type accumulator struct {
	windows Windows

	processed int
	valid     int

	ytd            int
	rolling6Months int
	currentMonth   int

	totalResolution float64

	shifts         ShiftCounts
	last1MonthSh   ShiftCounts
	last3MonthsSh  ShiftCounts
	last6MonthsSh  ShiftCounts
	monthly        map[string]int
	monthlyResolve map[string][]float64
	weekly         map[string]int
	weeklyResolve  map[string][]float64
	tickets        []ProcessedTicket
}

func newAccumulator(now time.Time) *accumulator {
	return &accumulator{
		windows:        NewWindows(now),
		shifts:         NewShiftCounts(),
		last1MonthSh:   NewShiftCounts(),
		last3MonthsSh:  NewShiftCounts(),
		last6MonthsSh:  NewShiftCounts(),
		monthly:        make(map[string]int),
		monthlyResolve: make(map[string][]float64),
		weekly:         make(map[string]int),
		weeklyResolve:  make(map[string][]float64),
		tickets:        make([]ProcessedTicket, 0),
	}
}

// Aggregate folds raw ticket rows into an AnalysisResult relative to now.
// Timestamps are read as wall-clock time in now's location. Rows with missing
// or malformed dates, a creation after now, or a resolution before creation
// are counted in TotalProcessedRows only. The same input and now always
// yield the same result.
func Aggregate(records []RawRecord, now time.Time) AnalysisResult {
	acc := newAccumulator(now)

	for _, rec := range records {
		acc.processed++

		ticket, ok := ProcessRecord(rec, now)
		if !ok {
			continue
		}
		acc.add(ticket)
	}

	res := acc.result()

	log.Debug().
		Int("processed", res.TotalProcessedRows).
		Int("valid", res.TotalValidRows).
		Int("months", len(res.MonthlyTickets)).
		Int("weeks", len(res.WeeklyTickets)).
		Time("now", now).
		Msg("Aggregated ticket records")

	return res
}

// ProcessRecord validates a single row and derives its shift and buckets.
// It reports false for any row Aggregate would skip.
func ProcessRecord(rec RawRecord, now time.Time) (ProcessedTicket, bool) {
	rawCreate, rawResolve := rec[FieldCreateDate], rec[FieldResolvedDate]
	if rawCreate == "" || rawResolve == "" {
		return ProcessedTicket{}, false
	}

	created, err := ParseLocalTimestamp(rawCreate, now.Location())
	if err != nil {
		return ProcessedTicket{}, false
	}
	resolved, err := ParseLocalTimestamp(rawResolve, now.Location())
	if err != nil {
		return ProcessedTicket{}, false
	}

	if created.After(now) || resolved.Before(created) {
		return ProcessedTicket{}, false
	}

	return ProcessedTicket{
		CreateDate:  created,
		ResolveDate: resolved,
		ResolveTime: resolved.Sub(created).Hours(),
		Shift:       ClassifyShift(created),
		MonthKey:    MonthKey(created),
		WeekKey:     WeekKey(created),
	}, true
}

func (a *accumulator) add(t ProcessedTicket) {
	a.valid++
	a.totalResolution += t.ResolveTime

	a.shifts[t.Shift]++
	if !t.CreateDate.Before(a.windows.Last1MonthStart) {
		a.last1MonthSh[t.Shift]++
	}
	if !t.CreateDate.Before(a.windows.Last3MonthsStart) {
		a.last3MonthsSh[t.Shift]++
	}
	if !t.CreateDate.Before(a.windows.Rolling6MonthsStart) {
		a.last6MonthsSh[t.Shift]++
		a.rolling6Months++
	}

	a.monthly[t.MonthKey]++
	a.monthlyResolve[t.MonthKey] = append(a.monthlyResolve[t.MonthKey], t.ResolveTime)
	a.weekly[t.WeekKey]++
	a.weeklyResolve[t.WeekKey] = append(a.weeklyResolve[t.WeekKey], t.ResolveTime)

	if !t.CreateDate.Before(a.windows.YTDStart) {
		a.ytd++
	}
	if !t.CreateDate.Before(a.windows.CurrentMonthStart) {
		a.currentMonth++
	}

	a.tickets = append(a.tickets, t)
}

// result assembles the final snapshot; the accumulator must not be reused.
func (a *accumulator) result() AnalysisResult {
	avgMonthly := safeDiv(float64(a.valid), float64(len(a.monthly)))
	avgWeekly := safeDiv(float64(a.valid), float64(len(a.weekly)))

	progress := a.windows.MonthProgress()
	projected := 0.0
	if progress > 0 {
		projected = float64(a.currentMonth) / progress
	}
	trendVsAverage := projected - avgMonthly

	monthlyStats := BuildMonthlyStats(a.monthly, a.monthlyResolve, a.windows.FullMonths)
	last4Weeks := sumLatest(a.weekly, 4)

	return AnalysisResult{
		YTDCount:                     a.ytd,
		Last6MonthsCount:             a.rolling6Months,
		Last6MonthsAvgResolutionTime: meanMonthlyResolution(monthlyStats),
		Last4WeeksCount:              last4Weeks,
		AvgMonthly:                   avgMonthly,
		AvgWeekly:                    avgWeekly,
		AvgResolutionTime:            safeDiv(a.totalResolution, float64(a.valid)),

		ShiftCounts:            a.shifts.ensureKeys(),
		Last1MonthShiftCounts:  a.last1MonthSh.ensureKeys(),
		Last3MonthsShiftCounts: a.last3MonthsSh.ensureKeys(),
		Last6MonthsShiftCounts: a.last6MonthsSh.ensureKeys(),

		MonthlyTickets:      a.monthly,
		MonthlyResolveTimes: a.monthlyResolve,
		MonthlyStats:        monthlyStats,
		MonthlyLastSix:      legacySummaries(monthlyStats),

		WeeklyTickets:      a.weekly,
		WeeklyResolveTimes: a.weeklyResolve,

		CurrentMonthCount:     a.currentMonth,
		CurrentMonthProgress:  progress,
		ProjectedCurrentMonth: projected,
		TrendVsAverage:        trendVsAverage,
		TrendPercentage:       safeDiv(trendVsAverage, avgMonthly) * 100,

		TotalProcessedRows: a.processed,
		TotalValidRows:     a.valid,
		ProcessedTickets:   a.tickets,

		Last6CalendarMonthsCount: sumLatest(a.monthly, 6),
		Last4CalendarWeeksCount:  last4Weeks,

		Windows: a.windows,
	}
}

// sumLatest sums the counts of the n lexicographically greatest keys.
// Month and week keys sort chronologically as strings.
func sumLatest(counts map[string]int, n int) int {
	keys := latestKeys(counts, n)
	return lo.SumBy(keys, func(k string) int { return counts[k] })
}

// latestKeys returns up to n of the greatest keys, ascending.
func latestKeys(counts map[string]int, n int) []string {
	keys := lo.Keys(counts)
	slices.Sort(keys)
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	return keys
}
