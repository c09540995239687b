package tracker

import (
	"context"
	"strings"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/entry"
)

// Status is the display classification of one calendar day. The today-*
// variants exist because today is the only day the user can still act on.
type Status string

const (
	StatusFuture         Status = "future"
	StatusTodayEmpty     Status = "today-empty"
	StatusTodayPending   Status = "today-pending"
	StatusTodayCompleted Status = "today-completed"
	StatusTodayFailed    Status = "today-failed"
	StatusEmpty          Status = "empty"
	StatusPending        Status = "pending"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
)

// IsToday reports whether the status belongs to the current day.
func (st Status) IsToday() bool {
	return strings.HasPrefix(string(st), "today")
}

// StatusOf classifies a day against today. Both days come from the same
// local-calendar normalization; comparing a UTC-derived string against a
// local-derived one put entries in the wrong cell in earlier iterations of
// this view, so the comparison is string equality on normalized days only.
func StatusOf(today, day dates.Day, e *entry.DailyEntry) Status {
	switch {
	case day.After(today):
		return StatusFuture
	case day == today:
		switch {
		case e == nil:
			return StatusTodayEmpty
		case !e.Evening.Decided():
			return StatusTodayPending
		case e.Evening == entry.Success:
			return StatusTodayCompleted
		default:
			return StatusTodayFailed
		}
	default:
		switch {
		case e == nil:
			// A past day nobody confirmed reads as failed in the views, but
			// keeps its own status so callers can tell the cases apart.
			return StatusEmpty
		case !e.Evening.Decided():
			return StatusPending
		case e.Evening == entry.Success:
			return StatusCompleted
		default:
			return StatusFailed
		}
	}
}

// Classify classifies a day using the service clock.
func (s *Service) Classify(day dates.Day, e *entry.DailyEntry) Status {
	return StatusOf(s.today(), day, e)
}

// WeekDay is one cell of the Monday-start week overview.
type WeekDay struct {
	Day    dates.Day
	Status Status
	Entry  *entry.DailyEntry
}

// Week returns the seven days of the current week, Monday first, each
// classified. Future days of the week appear with StatusFuture.
func (s *Service) Week(ctx context.Context) []WeekDay {
	today := s.today()
	monday := today.StartOfWeek()

	byDay := make(map[dates.Day]*entry.DailyEntry)
	for _, e := range s.History(ctx, 7, OrderAsc) {
		byDay[e.Date] = e
	}

	week := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDays(i)
		e := byDay[day]
		week = append(week, WeekDay{Day: day, Status: StatusOf(today, day, e), Entry: e})
	}
	return week
}
