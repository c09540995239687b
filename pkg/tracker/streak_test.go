package tracker

import (
	"context"
	"testing"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/entry"
	"tableflip.dev/rauchfrei/pkg/store"
)

func day(offset int) dates.Day {
	return dates.Day("2026-09-01").AddDays(offset)
}

func clean(offset int) *entry.DailyEntry {
	return &entry.DailyEntry{Date: day(offset), Evening: entry.Success}
}

func TestComputeStreak(t *testing.T) {
	today := day(0)

	tests := []struct {
		name    string
		history []*entry.DailyEntry
		want    int
	}{
		{
			name:    "no history",
			history: nil,
			want:    0,
		},
		{
			name: "only a pending morning goal",
			history: []*entry.DailyEntry{
				{Date: day(0), MorningGoal: "try"},
			},
			want: 0,
		},
		{
			name: "today and yesterday clean, gap before",
			history: []*entry.DailyEntry{
				clean(0), clean(-1),
			},
			want: 2,
		},
		{
			name: "cigarette today resets regardless of prior days",
			history: []*entry.DailyEntry{
				{Date: day(0), Cigarettes: 1, Evening: entry.Failure},
				clean(-1), clean(-2), clean(-3),
			},
			want: 0,
		},
		{
			name: "logged count alone resets even when undecided",
			history: []*entry.DailyEntry{
				{Date: day(0), Cigarettes: 2},
				clean(-1),
			},
			want: 0,
		},
		{
			name: "explicit failure today resets",
			history: []*entry.DailyEntry{
				{Date: day(0), Evening: entry.Failure},
				clean(-1), clean(-2),
			},
			want: 0,
		},
		{
			name: "undecided today falls back to yesterday",
			history: []*entry.DailyEntry{
				{Date: day(0), MorningGoal: "still open"},
				clean(-1), clean(-2), clean(-3),
			},
			want: 3,
		},
		{
			name: "undecided today, yesterday also undecided",
			history: []*entry.DailyEntry{
				{Date: day(-1), MorningGoal: "never confirmed"},
				clean(-2), clean(-3),
			},
			want: 0,
		},
		{
			name: "single clean day with nothing before",
			history: []*entry.DailyEntry{
				clean(-1),
			},
			want: 1,
		},
		{
			name: "gap two days back stops the scan",
			history: []*entry.DailyEntry{
				clean(0), clean(-1),
				// day(-2) missing
				clean(-3), clean(-4),
			},
			want: 2,
		},
		{
			name: "failure inside the chain stops the scan",
			history: []*entry.DailyEntry{
				clean(0), clean(-1),
				{Date: day(-2), Evening: entry.Failure},
				clean(-3),
			},
			want: 2,
		},
		{
			name: "pending day inside the chain stops the scan",
			history: []*entry.DailyEntry{
				clean(0),
				{Date: day(-1), MorningGoal: "open"},
				clean(-2),
			},
			want: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := computeStreak(today, tc.history); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestStreakThroughService(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	if got := s.Streak(ctx); got != 0 {
		t.Fatalf("empty store: expected 0, got %d", got)
	}

	seedEntry(ms, "2026-09-01", store.Record{entry.FieldEvening: true})
	seedEntry(ms, "2026-08-31", store.Record{entry.FieldEvening: true})
	seedEntry(ms, "2026-08-29", store.Record{entry.FieldEvening: true}) // gap on the 30th

	if got := s.Streak(ctx); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestLastCigarettePrefersLogEvents(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	if _, ok := s.LastCigarette(ctx); ok {
		t.Fatalf("no evidence means no instant")
	}

	// A failed day without log events falls back to its end of day.
	seedEntry(ms, "2026-08-30", store.Record{entry.FieldEvening: false})
	got, ok := s.LastCigarette(ctx)
	if !ok {
		t.Fatalf("expected fallback instant")
	}
	if dates.Format(got) != "2026-08-30" || got.Hour() != 23 || got.Minute() != 59 {
		t.Fatalf("expected end of 2026-08-30, got %v", got)
	}

	// Logged events are more precise and win.
	if _, err := s.LogCigarette(ctx); err != nil {
		t.Fatalf("log: %v", err)
	}
	got, ok = s.LastCigarette(ctx)
	if !ok || !got.Equal(testNow) {
		t.Fatalf("expected log instant %v, got %v (ok=%v)", testNow, got, ok)
	}
}
