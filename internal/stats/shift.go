package stats

import (
	"time"

	"github.com/samber/lo"
)

// Shift is one of the six day-of-week / time-of-day buckets.
type Shift string

const (
	FrontHalfDays   Shift = "Front Half Days"   // Sun-Tue 04:30-16:30
	FrontHalfNights Shift = "Front Half Nights" // Sun-Tue 16:30-04:30
	BackHalfDays    Shift = "Back Half Days"    // Thu-Sat 04:30-16:30
	BackHalfNights  Shift = "Back Half Nights"  // Thu-Sat 16:30-04:30
	WednesdayDays   Shift = "Wednesday Days"
	WednesdayNights Shift = "Wednesday Nights"
)

// Shifts is the canonical display order.
var Shifts = []Shift{
	FrontHalfDays,
	FrontHalfNights,
	BackHalfDays,
	BackHalfNights,
	WednesdayDays,
	WednesdayNights,
}

const (
	dayShiftStart = 4*60 + 30  // 04:30 inclusive
	dayShiftEnd   = 16*60 + 30 // 16:30 exclusive
)

// ClassifyShift maps a wall-clock instant to its shift. Every instant maps
// to exactly one shift.
func ClassifyShift(t time.Time) Shift {
	minutes := t.Hour()*60 + t.Minute()
	isDay := minutes >= dayShiftStart && minutes < dayShiftEnd

	switch t.Weekday() {
	case time.Sunday, time.Monday, time.Tuesday:
		if isDay {
			return FrontHalfDays
		}
		return FrontHalfNights
	case time.Thursday, time.Friday, time.Saturday:
		if isDay {
			return BackHalfDays
		}
		return BackHalfNights
	default:
		if isDay {
			return WednesdayDays
		}
		return WednesdayNights
	}
}

// ShiftCounts holds a count per shift. Maps built by NewShiftCounts always
// carry all six keys.
type ShiftCounts map[Shift]int

// NewShiftCounts returns a zeroed, key-complete count map.
func NewShiftCounts() ShiftCounts {
	c := make(ShiftCounts, len(Shifts))
	for _, s := range Shifts {
		c[s] = 0
	}
	return c
}

// Total sums all shift counts.
func (c ShiftCounts) Total() int {
	return lo.Sum(lo.Values(c))
}

// Percentage returns the share of s in c, 0 when c is empty.
func (c ShiftCounts) Percentage(s Shift) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c[s]) / float64(total) * 100
}

// ensureKeys fills any missing canonical shift with 0.
func (c ShiftCounts) ensureKeys() ShiftCounts {
	if c == nil {
		return NewShiftCounts()
	}
	for _, s := range Shifts {
		if _, ok := c[s]; !ok {
			c[s] = 0
		}
	}
	return c
}
