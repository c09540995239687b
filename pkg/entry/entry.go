// Package entry defines the daily record and cigarette log types and their
// conversion to and from the loosely-typed store records.
package entry

import (
	"encoding/json"
	"time"

	"tableflip.dev/rauchfrei/pkg/dates"
)

// Store record field names. These match the historical shape of the data, so
// records written by older clients keep loading.
const (
	FieldUserID     = "user_id"
	FieldDate       = "date"
	FieldGoal       = "morning_goal"
	FieldEvening    = "evening_completed"
	FieldCigarettes = "cigarettes_count"
	FieldReflection = "reflection_note"
	FieldCreated    = "created_at"
	FieldUpdated    = "updated_at"
	FieldTimestamp  = "timestamp"
)

// DailyEntry is the one record kept per user and calendar day.
type DailyEntry struct {
	UserID      string
	Date        dates.Day
	MorningGoal string
	Evening     Completion
	Cigarettes  int
	Reflection  string
	Created     time.Time
	Updated     time.Time
}

// Pending reports whether a goal was set but the evening check is still open.
func (e *DailyEntry) Pending() bool {
	return e != nil && e.MorningGoal != "" && !e.Evening.Decided()
}

// FromRecord builds a DailyEntry from a raw store record. day wins over any
// date field stored in the record: the storage key is the source of truth,
// the embedded date is a convenience copy.
func FromRecord(day dates.Day, rec map[string]any) *DailyEntry {
	e := &DailyEntry{
		UserID:      stringField(rec, FieldUserID),
		Date:        day,
		MorningGoal: stringField(rec, FieldGoal),
		Evening:     completionField(rec, FieldEvening),
		Cigarettes:  intField(rec, FieldCigarettes),
		Reflection:  stringField(rec, FieldReflection),
		Created:     timeField(rec, FieldCreated),
		Updated:     timeField(rec, FieldUpdated),
	}
	if e.Cigarettes < 0 {
		e.Cigarettes = 0
	}
	return e
}

// Record renders the entry as a full store record.
func (e *DailyEntry) Record() map[string]any {
	rec := map[string]any{
		FieldUserID:     e.UserID,
		FieldDate:       e.Date.String(),
		FieldCigarettes: e.Cigarettes,
	}
	if e.MorningGoal != "" {
		rec[FieldGoal] = e.MorningGoal
	}
	if v, ok := e.Evening.Bool(); ok {
		rec[FieldEvening] = v
	}
	if e.Reflection != "" {
		rec[FieldReflection] = e.Reflection
	}
	if !e.Created.IsZero() {
		rec[FieldCreated] = FormatTime(e.Created)
	}
	if !e.Updated.IsZero() {
		rec[FieldUpdated] = FormatTime(e.Updated)
	}
	return rec
}

// CigaretteLog is one append-only smoking event.
type CigaretteLog struct {
	Timestamp time.Time
	Date      dates.Day
}

// LogFromRecord decodes a cigarette log event; ok is false when the record
// carries no parseable timestamp.
func LogFromRecord(rec map[string]any) (CigaretteLog, bool) {
	ts := timeField(rec, FieldTimestamp)
	if ts.IsZero() {
		return CigaretteLog{}, false
	}
	day := dates.Day(stringField(rec, FieldDate))
	if day == "" {
		day = dates.Format(ts)
	}
	return CigaretteLog{Timestamp: ts, Date: day}, true
}

// Record renders the log event in store form.
func (l CigaretteLog) Record() map[string]any {
	return map[string]any{
		FieldTimestamp: FormatTime(l.Timestamp),
		FieldDate:      l.Date.String(),
	}
}

// ParseTime reads an RFC3339 instant.
func ParseTime(v string) (time.Time, error) {
	return time.Parse(time.RFC3339, v)
}

// FormatTime writes an instant in RFC3339 UTC, the store's timestamp form.
func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339)
}

func stringField(rec map[string]any, key string) string {
	if s, ok := rec[key].(string); ok {
		return s
	}
	return ""
}

// completionField only trusts an actual boolean. Older records sometimes hold
// null or "" here; those mean the evening check never happened.
func completionField(rec map[string]any, key string) Completion {
	if b, ok := rec[key].(bool); ok {
		return CompletionOf(b)
	}
	return Undecided
}

func intField(rec map[string]any, key string) int {
	switch v := rec[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}

func timeField(rec map[string]any, key string) time.Time {
	s, ok := rec[key].(string)
	if !ok || s == "" {
		return time.Time{}
	}
	t, err := ParseTime(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
