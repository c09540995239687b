package tracker

import (
	"context"
	"testing"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/entry"
	"tableflip.dev/rauchfrei/pkg/store"
)

func TestHistoryWindowInclusive(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	seedEntry(ms, "2026-09-01", store.Record{}) // today, in
	seedEntry(ms, "2026-08-25", store.Record{}) // exactly window start, in
	seedEntry(ms, "2026-08-24", store.Record{}) // one before, out
	seedEntry(ms, "2026-09-02", store.Record{}) // future, out

	hist := s.History(ctx, 7, OrderAsc)
	if len(hist) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(hist))
	}
	if hist[0].Date != "2026-08-25" || hist[1].Date != "2026-09-01" {
		t.Fatalf("unexpected window contents: %s, %s", hist[0].Date, hist[1].Date)
	}
}

func TestHistoryOrder(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	for _, d := range []dates.Day{"2026-08-30", "2026-09-01", "2026-08-31"} {
		seedEntry(ms, d, store.Record{})
	}

	asc := s.History(ctx, 30, OrderAsc)
	for i := 1; i < len(asc); i++ {
		if !asc[i-1].Date.Before(asc[i].Date) {
			t.Fatalf("ascending order violated at %d: %v", i, asc)
		}
	}

	desc := s.History(ctx, 30, OrderDesc)
	for i := 1; i < len(desc); i++ {
		if !desc[i].Date.Before(desc[i-1].Date) {
			t.Fatalf("descending order violated at %d: %v", i, desc)
		}
	}
}

func TestHistorySkipsAbsentDays(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	seedEntry(ms, "2026-09-01", store.Record{})
	seedEntry(ms, "2026-08-28", store.Record{})

	hist := s.History(ctx, 30, OrderAsc)
	if len(hist) != 2 {
		t.Fatalf("absent days must not be materialized, got %d entries", len(hist))
	}
}

func TestHistoryCarriesDisplayDates(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	// The record's own date field is stale on purpose; the key wins.
	seedEntry(ms, "2026-09-01", store.Record{entry.FieldDate: "1999-01-01"})

	hist := s.History(ctx, 7, OrderDesc)
	if len(hist) != 1 || hist[0].Date != "2026-09-01" {
		t.Fatalf("expected key-derived display date, got %v", hist)
	}
}
