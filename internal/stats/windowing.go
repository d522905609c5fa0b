package stats

import (
	"fmt"
	"time"
)

// Bucket granularities understood by SnapToStart/SnapToEnd.
const (
	BucketDay   = "day"
	BucketWeek  = "week"
	BucketMonth = "month"
)

const (
	monthKeyLayout = "2006-01"
	weekKeyLayout  = "2006-01-02"
	fullMonthCount = 6
)

// AnalysisWindow is a contiguous range of buckets.
type AnalysisWindow struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Bucket string    `json:"bucket"` // "day", "week", "month"
}

// NewAnalysisWindow creates a window with boundaries snapped to whole buckets.
func NewAnalysisWindow(start, end time.Time, bucket string) AnalysisWindow {
	if bucket == "" {
		bucket = BucketDay
	}
	return AnalysisWindow{
		Start:  SnapToStart(start, bucket),
		End:    SnapToEnd(end, bucket),
		Bucket: bucket,
	}
}

// SnapToStart normalizes a timestamp to the beginning of its bucket (0:00:00).
func SnapToStart(t time.Time, bucket string) time.Time {
	if t.IsZero() {
		return t
	}
	switch bucket {
	case BucketMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case BucketWeek:
		// Snap to Monday
		offset := 1 - int(t.Weekday())
		if t.Weekday() == time.Sunday {
			offset = -6
		}
		return time.Date(t.Year(), t.Month(), t.Day()+offset, 0, 0, 0, 0, t.Location())
	default: // day
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// SnapToEnd normalizes a timestamp to the very end of its bucket (23:59:59.999...).
func SnapToEnd(t time.Time, bucket string) time.Time {
	if t.IsZero() {
		return t
	}
	switch bucket {
	case BucketMonth:
		nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
		return nextMonth.Add(-time.Nanosecond)
	case BucketWeek:
		return SnapToStart(t, BucketWeek).AddDate(0, 0, 7).Add(-time.Nanosecond)
	default: // day
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
	}
}

// Subdivide returns the bucket start times within the window.
func (w AnalysisWindow) Subdivide() []time.Time {
	var buckets []time.Time
	current := w.Start

	for current.Before(w.End) {
		buckets = append(buckets, current)
		switch w.Bucket {
		case BucketMonth:
			current = current.AddDate(0, 1, 0)
		case BucketWeek:
			current = current.AddDate(0, 0, 7)
		default: // day
			current = current.AddDate(0, 0, 1)
		}
	}
	return buckets
}

// GenerateLabel returns a human-readable label for a bucket (e.g., "Jan 2024" or "2024-W01").
func (w AnalysisWindow) GenerateLabel(t time.Time) string {
	switch w.Bucket {
	case BucketMonth:
		return t.Format("Jan 2006")
	case BucketWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	default: // day
		return t.Format("2006-01-02")
	}
}

// MonthKey returns the "YYYY-MM" bucket of t in t's own location.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// WeekKey returns the Monday that starts t's week as "YYYY-MM-DD".
func WeekKey(t time.Time) string {
	return SnapToStart(t, BucketWeek).Format(weekKeyLayout)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// Windows holds every membership boundary derived from the reference instant.
// All starts are inclusive.
//
// The definitions are not uniform. Last1MonthStart steps one calendar month
// back and drops the time of day; Last3MonthsStart is a fixed 90 days;
// Rolling6MonthsStart steps six calendar months back keeping the time of day.
// FullMonths is the separate "last six full calendar months" range and never
// includes the current month.
type Windows struct {
	Now                 time.Time      `json:"now"`
	YTDStart            time.Time      `json:"ytdStart"`
	CurrentMonthStart   time.Time      `json:"currentMonthStart"`
	Last1MonthStart     time.Time      `json:"last1MonthStart"`
	Last3MonthsStart    time.Time      `json:"last3MonthsStart"`
	Rolling6MonthsStart time.Time      `json:"rolling6MonthsStart"`
	FullMonths          AnalysisWindow `json:"fullMonths"`
}

// NewWindows derives all windows from now, in now's location.
func NewWindows(now time.Time) Windows {
	loc := now.Location()
	y, m, d := now.Date()

	prevMonth := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
	firstFull := time.Date(y, m-fullMonthCount, 1, 0, 0, 0, 0, loc)

	return Windows{
		Now:                 now,
		YTDStart:            time.Date(y, time.January, 1, 0, 0, 0, 0, loc),
		CurrentMonthStart:   time.Date(y, m, 1, 0, 0, 0, 0, loc),
		Last1MonthStart:     time.Date(y, m-1, d, 0, 0, 0, 0, loc),
		Last3MonthsStart:    now.Add(-3 * 30 * 24 * time.Hour),
		Rolling6MonthsStart: now.AddDate(0, -6, 0),
		FullMonths:          NewAnalysisWindow(firstFull, prevMonth, BucketMonth),
	}
}

// MonthProgress is the elapsed fraction of now's month, in (0, 1].
func (w Windows) MonthProgress() float64 {
	return float64(w.Now.Day()) / float64(DaysInMonth(w.Now))
}
