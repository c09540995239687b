package tracker

import (
	"context"
	"testing"

	"tableflip.dev/rauchfrei/pkg/entry"
	"tableflip.dev/rauchfrei/pkg/store"
)

func TestStatusOf(t *testing.T) {
	today := day(0)
	undecided := &entry.DailyEntry{MorningGoal: "open"}
	completed := &entry.DailyEntry{Evening: entry.Success}
	failed := &entry.DailyEntry{Evening: entry.Failure}

	tests := []struct {
		name string
		day  int
		e    *entry.DailyEntry
		want Status
	}{
		{"future regardless of record", 1, completed, StatusFuture},
		{"far future", 30, nil, StatusFuture},
		{"today no record", 0, nil, StatusTodayEmpty},
		{"today undecided", 0, undecided, StatusTodayPending},
		{"today completed", 0, completed, StatusTodayCompleted},
		{"today failed", 0, failed, StatusTodayFailed},
		{"past no record", -1, nil, StatusEmpty},
		{"past undecided", -1, undecided, StatusPending},
		{"past completed", -1, completed, StatusCompleted},
		{"past failed", -1, failed, StatusFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusOf(today, day(tc.day), tc.e); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestStatusIsToday(t *testing.T) {
	for _, st := range []Status{StatusTodayEmpty, StatusTodayPending, StatusTodayCompleted, StatusTodayFailed} {
		if !st.IsToday() {
			t.Fatalf("%s should be a today status", st)
		}
	}
	for _, st := range []Status{StatusFuture, StatusEmpty, StatusPending, StatusCompleted, StatusFailed} {
		if st.IsToday() {
			t.Fatalf("%s should not be a today status", st)
		}
	}
}

func TestWeek(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	// testNow is Tuesday 2026-09-01; the week runs Mon 08-31 .. Sun 09-06.
	seedEntry(ms, "2026-08-31", store.Record{entry.FieldEvening: true})
	seedEntry(ms, "2026-09-01", store.Record{entry.FieldGoal: "open"})

	week := s.Week(ctx)
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].Day != "2026-08-31" || week[6].Day != "2026-09-06" {
		t.Fatalf("unexpected week bounds: %s .. %s", week[0].Day, week[6].Day)
	}

	if week[0].Status != StatusCompleted {
		t.Fatalf("monday: expected completed, got %s", week[0].Status)
	}
	if week[1].Status != StatusTodayPending {
		t.Fatalf("tuesday: expected today-pending, got %s", week[1].Status)
	}
	for i := 2; i < 7; i++ {
		if week[i].Status != StatusFuture {
			t.Fatalf("day %d: expected future, got %s", i, week[i].Status)
		}
	}
}
