package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the shape ticket exports use for CreateDate/ResolvedDate.
const TimestampLayout = "2006-01-02T15:04:05"

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrYearOutOfRange     = errors.New("timestamp year out of range")
)

// ParseLocalTimestamp reads "YYYY-MM-DDTHH:mm:ss" as wall-clock time in loc.
// A fractional-second suffix is accepted and truncated. The string is never
// reinterpreted as UTC, so the hour and weekday are exactly what was written.
// Years must lie strictly between 1900 and 2100.
func ParseLocalTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}

	// time.Parse tolerates single-digit hours and a trailing fraction on its
	// own; pin the fixed-width prefix so only the documented shape passes.
	n := len(TimestampLayout)
	if len(s) < n || s[10] != 'T' {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	if len(s) > n && (s[n] != '.' || len(s) == n+1) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}

	t, err := time.ParseInLocation(TimestampLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, s, err)
	}

	if y := t.Year(); y <= 1900 || y >= 2100 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrYearOutOfRange, y)
	}

	return t.Truncate(time.Second), nil
}

// IsValidTimestamp reports whether s passes ParseLocalTimestamp.
func IsValidTimestamp(s string) bool {
	_, err := ParseLocalTimestamp(s, time.UTC)
	return err == nil
}
