package tracker

import (
	"context"
	"sort"
	"strings"
	"time"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/entry"
)

// Order fixes the direction of a history listing. Different consumers need
// different directions (the chart wants oldest first, the streak scan and the
// catch-up detector want newest first), so the parameter is explicit instead
// of a baked-in convention.
type Order int

const (
	OrderDesc Order = iota
	OrderAsc
)

// History returns the stored entries with dates in [today-windowDays, today],
// both ends inclusive. Days without a record are simply not present; nothing
// is materialized for them. Store failures degrade to an empty listing.
func (s *Service) History(ctx context.Context, windowDays int, order Order) []*entry.DailyEntry {
	if s.Persistence == nil {
		return nil
	}

	today := s.today()
	start := today.AddDays(-windowDays)

	keys, err := s.Persistence.Keys(ctx, s.entriesPrefix())
	if err != nil {
		s.warn("list entries failed", "err", err)
		return nil
	}

	out := make([]*entry.DailyEntry, 0, len(keys))
	for _, key := range keys {
		day := dates.FromKey(key[strings.LastIndex(key, "/")+1:])
		if day.Before(start) || day.After(today) {
			continue
		}
		rec, found, err := s.Persistence.Read(ctx, key)
		if err != nil {
			s.warn("read entry failed", "key", key, "err", err)
			continue
		}
		if !found {
			continue
		}
		out = append(out, entry.FromRecord(day, rec))
	}

	sort.Slice(out, func(i, j int) bool {
		if order == OrderAsc {
			return out[i].Date.Before(out[j].Date)
		}
		return out[j].Date.Before(out[i].Date)
	})
	return out
}

// CigaretteLogs returns every logged smoking event, newest first. Store
// failures degrade to an empty listing.
func (s *Service) CigaretteLogs(ctx context.Context) []entry.CigaretteLog {
	if s.Persistence == nil {
		return nil
	}

	keys, err := s.Persistence.Keys(ctx, s.logsPrefix())
	if err != nil {
		s.warn("list cigarette logs failed", "err", err)
		return nil
	}

	logs := make([]entry.CigaretteLog, 0, len(keys))
	for _, key := range keys {
		rec, found, err := s.Persistence.Read(ctx, key)
		if err != nil {
			s.warn("read cigarette log failed", "key", key, "err", err)
			continue
		}
		if !found {
			continue
		}
		if l, ok := entry.LogFromRecord(rec); ok {
			logs = append(logs, l)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs
}

// LastCigarette returns the instant of the most recent smoking event. The
// precise log entries win; when none exist, the newest smoked day is taken
// at 23:59:59 local, the conservative end-of-day guess for the health timer.
// ok is false when history carries no smoking evidence at all.
func (s *Service) LastCigarette(ctx context.Context) (time.Time, bool) {
	logs := s.CigaretteLogs(ctx)
	if len(logs) > 0 {
		return logs[0].Timestamp, true
	}

	for _, e := range s.History(ctx, streakLookbackDays, OrderDesc) {
		if e.Evening == entry.Failure || e.Cigarettes > 0 {
			endOfDay := e.Date.Time().Add(23*time.Hour + 59*time.Minute + 59*time.Second)
			return endOfDay, true
		}
	}
	return time.Time{}, false
}
