package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// PartialDate is a date that may be known only to the year or month:
// "1991", "1991-09" or "1991-09-24". The raw value is kept so it
// serializes exactly as received.
type PartialDate string

// Precision is how much of a PartialDate is known.
type Precision int

// Date precisions.
const (
	PrecisionNone Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
)

// IsZero reports whether the date is unknown.
func (d PartialDate) IsZero() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Precision reports which components are present.
func (d PartialDate) Precision() Precision {
	if d.IsZero() {
		return PrecisionNone
	}
	switch strings.Count(string(d), "-") {
	case 0:
		return PrecisionYear
	case 1:
		return PrecisionMonth
	default:
		return PrecisionDay
	}
}

// Year returns the year component, or 0 when the date is unknown or
// malformed.
func (d PartialDate) Year() int {
	s := strings.TrimSpace(string(d))
	if len(s) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0
	}
	return y
}

// Time returns the earliest instant the date could denote, in UTC.
// Missing components default to the first month or day.
func (d PartialDate) Time() (time.Time, error) {
	s := strings.TrimSpace(string(d))
	switch d.Precision() {
	case PrecisionNone:
		return time.Time{}, fmt.Errorf("empty date")
	case PrecisionYear:
		y, err := strconv.Atoi(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid year %q: %w", s, err)
		}
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func (d PartialDate) String() string {
	return string(d)
}
