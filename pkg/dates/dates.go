// Package dates normalizes calendar days for the tracker. A Day is always the
// user's local calendar date; storage keys swap the dashes for underscores so
// they never collide with the path separator.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO = "2006-01-02"
)

// Day is a local calendar date in canonical YYYY-MM-DD form. Because the form
// is fixed-width and zero-padded, lexical comparison matches chronological
// comparison.
type Day string

// Format derives the Day for an instant using local calendar fields. Deriving
// the day through UTC shifts entries across midnight for anyone east or west
// of Greenwich, so only the local fields are used here.
func Format(t time.Time) Day {
	l := t.Local()
	return Day(fmt.Sprintf("%04d-%02d-%02d", l.Year(), int(l.Month()), l.Day()))
}

// Parse validates a YYYY-MM-DD string and returns it as a Day.
func Parse(s string) (Day, error) {
	t, err := time.ParseInLocation(layoutISO, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("dates: parse %q: %w", s, err)
	}
	return Format(t), nil
}

// Key renders the storage-safe form of a day, e.g. 2026-09-01 -> 2026_09_01.
func Key(d Day) string {
	return strings.ReplaceAll(string(d), "-", "_")
}

// FromKey is the exact inverse of Key.
func FromKey(k string) Day {
	return Day(strings.ReplaceAll(k, "_", "-"))
}

// Time returns local midnight of the day.
func (d Day) Time() time.Time {
	t, err := time.ParseInLocation(layoutISO, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the day n calendar days away. Negative n walks backwards.
func (d Day) AddDays(n int) Day {
	return Format(d.Time().AddDate(0, 0, n))
}

// Before reports whether d falls strictly before other.
func (d Day) Before(other Day) bool {
	return string(d) < string(other)
}

// After reports whether d falls strictly after other.
func (d Day) After(other Day) bool {
	return string(d) > string(other)
}

func (d Day) String() string {
	return string(d)
}

// Weekday returns the weekday of the day.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// StartOfWeek returns the Monday of the week containing d.
func (d Day) StartOfWeek() Day {
	offset := int(time.Monday - d.Weekday())
	if d.Weekday() == time.Sunday {
		offset = -6
	}
	return d.AddDays(offset)
}
