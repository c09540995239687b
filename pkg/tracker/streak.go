package tracker

import (
	"context"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/entry"
)

// streakLookbackDays bounds the backward scan; nobody's chain needs more
// than a year of records to render.
const streakLookbackDays = 365

// Streak returns the number of consecutive clean days ending at today or
// yesterday. A day is clean only when its record exists and the evening was
// explicitly confirmed smoke-free; pending, absent, and failed days all break
// the chain, and there is no grace day for gaps.
func (s *Service) Streak(ctx context.Context) int {
	return computeStreak(s.today(), s.History(ctx, streakLookbackDays, OrderDesc))
}

func computeStreak(today dates.Day, history []*entry.DailyEntry) int {
	if len(history) == 0 {
		return 0
	}

	byDay := make(map[dates.Day]*entry.DailyEntry, len(history))
	for _, e := range history {
		byDay[e.Date] = e
	}

	// An explicit failure or any logged cigarette today zeroes the streak no
	// matter what the morning goal says.
	todayEntry := byDay[today]
	if todayEntry != nil && (todayEntry.Evening == entry.Failure || todayEntry.Cigarettes > 0) {
		return 0
	}

	streak := 0
	scan := today
	if todayEntry != nil && todayEntry.Evening == entry.Success {
		// Today is already confirmed clean and counts.
		streak = 1
		scan = today.AddDays(-1)
	} else {
		// Today is undecided; the chain can only have ended yesterday.
		scan = today.AddDays(-1)
		yesterday := byDay[scan]
		if yesterday == nil || yesterday.Evening != entry.Success {
			return 0
		}
		streak = 1
		scan = scan.AddDays(-1)
	}

	// Walk backwards one calendar day at a time. A missing record is as
	// chain-breaking as an explicit failure.
	for {
		e := byDay[scan]
		if e == nil || e.Evening != entry.Success {
			break
		}
		streak++
		scan = scan.AddDays(-1)
	}
	return streak
}
