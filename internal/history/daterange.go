package history

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// DayLayout is the calendar date format used for ranges and buckets.
const DayLayout = "2006-01-02"

// ErrInvalidRange is returned when a range starts after it ends.
var ErrInvalidRange = errors.New("start date is after end date")

// Range is an inclusive span of UTC calendar days.
type Range struct {
	Start time.Time // UTC midnight
	End   time.Time // UTC midnight
}

// NewRange builds a range from two instants, truncated to their UTC days.
func NewRange(start, end time.Time) (Range, error) {
	r := Range{Start: startOfDay(start), End: startOfDay(end)}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// ParseRange parses two YYYY-MM-DD dates.
func ParseRange(start, end string) (Range, error) {
	s, err := time.Parse(DayLayout, strings.TrimSpace(start))
	if err != nil {
		return Range{}, fmt.Errorf("parse start date: %w", err)
	}
	e, err := time.Parse(DayLayout, strings.TrimSpace(end))
	if err != nil {
		return Range{}, fmt.Errorf("parse end date: %w", err)
	}
	return NewRange(s, e)
}

// LastDays returns the range ending on now's UTC day and starting days
// earlier.
func LastDays(days int, now time.Time) Range {
	end := startOfDay(now)
	return Range{Start: end.AddDate(0, 0, -days), End: end}
}

// Validate checks that the range is not inverted.
func (r Range) Validate() error {
	if r.Start.After(r.End) {
		return ErrInvalidRange
	}
	return nil
}

// Epochs returns the inclusive Unix bounds of the range: the first second of
// the start day and the last second of the end day.
func (r Range) Epochs() (from, to int64) {
	return r.Start.Unix(), r.End.AddDate(0, 0, 1).Unix() - 1
}

// Equal reports whether both ranges cover the same days.
func (r Range) Equal(other Range) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// Days returns the number of calendar days in the range. It counts Unix
// seconds since time.Duration saturates past about 292 years.
func (r Range) Days() int {
	return int((r.End.Unix()-r.Start.Unix())/secondsPerDay) + 1
}

// Contains reports whether t falls on one of the range's days.
func (r Range) Contains(t time.Time) bool {
	d := startOfDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) String() string {
	return r.Start.Format(DayLayout) + " → " + r.End.Format(DayLayout)
}

// Day truncates t to midnight of its UTC day.
func Day(t time.Time) time.Time {
	return startOfDay(t)
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
