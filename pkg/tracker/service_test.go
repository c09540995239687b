package tracker

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/rauchfrei/pkg/entry"
	"tableflip.dev/rauchfrei/pkg/store"
)

func TestSetMorningGoalThenToday(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	if _, err := s.SetMorningGoal(ctx, "  no smoking before lunch  "); err != nil {
		t.Fatalf("set goal: %v", err)
	}

	e, found := s.Today(ctx)
	if !found {
		t.Fatalf("expected today's entry")
	}
	if e.MorningGoal != "no smoking before lunch" {
		t.Fatalf("unexpected goal: %q", e.MorningGoal)
	}
	if e.Evening.Decided() {
		t.Fatalf("fresh goal must leave the evening undecided")
	}
	if e.Created.IsZero() || e.Updated.IsZero() {
		t.Fatalf("timestamps not set: %+v", e)
	}
}

func TestSetMorningGoalKeepsCreatedAt(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	first, err := s.SetMorningGoal(ctx, "first try")
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	second, err := s.SetMorningGoal(ctx, "changed my mind")
	if err != nil {
		t.Fatalf("set goal again: %v", err)
	}

	if !second.Created.Equal(first.Created) {
		t.Fatalf("created_at must be set once: %v vs %v", first.Created, second.Created)
	}
	if second.MorningGoal != "changed my mind" {
		t.Fatalf("unexpected goal: %q", second.MorningGoal)
	}
}

func TestSetMorningGoalValidation(t *testing.T) {
	s := newTestService(newMemStore())
	for _, goal := range []string{"", "   ", "\t"} {
		if _, err := s.SetMorningGoal(context.Background(), goal); !errors.Is(err, ErrEmptyGoal) {
			t.Fatalf("expected ErrEmptyGoal for %q, got %v", goal, err)
		}
	}
}

func TestSetMorningGoalPropagatesStoreFailure(t *testing.T) {
	ms := newMemStore()
	ms.failWrites = true
	s := newTestService(ms)

	if _, err := s.SetMorningGoal(context.Background(), "please persist me"); err == nil {
		t.Fatalf("store failure must surface, goal text would be lost silently")
	}
}

func TestCompleteEveningZeroesLoggedCount(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	seedEntry(ms, "2026-09-01", store.Record{
		entry.FieldGoal:       "stay clean",
		entry.FieldCigarettes: float64(3),
	})

	e, err := s.CompleteEvening(ctx, CompleteOptions{Completed: true})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if e.Cigarettes != 0 {
		t.Fatalf("smoke-free claim must zero the count, got %d", e.Cigarettes)
	}
	if e.Evening != entry.Success {
		t.Fatalf("expected success, got %v", e.Evening)
	}
	if e.MorningGoal != "stay clean" {
		t.Fatalf("merge dropped the goal: %+v", e)
	}
}

func TestCompleteEveningOverrideWins(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	seedEntry(ms, "2026-09-01", store.Record{entry.FieldCigarettes: float64(3)})

	override := 5
	e, err := s.CompleteEvening(ctx, CompleteOptions{Completed: true, CountOverride: &override})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if e.Cigarettes != 5 {
		t.Fatalf("override must win over the zeroing, got %d", e.Cigarettes)
	}

	negative := -1
	if _, err := s.CompleteEvening(ctx, CompleteOptions{Completed: false, CountOverride: &negative}); !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
}

func TestCompleteEveningTargetsPastDay(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	seedEntry(ms, "2026-08-31", store.Record{entry.FieldGoal: "yesterday's goal"})

	e, err := s.CompleteEvening(ctx, CompleteOptions{Completed: true, Reflection: "made it", Date: "2026-08-31"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if e.Date != "2026-08-31" {
		t.Fatalf("expected yesterday's record, got %s", e.Date)
	}
	if e.Evening != entry.Success || e.Reflection != "made it" {
		t.Fatalf("unexpected entry: %+v", e)
	}

	// Today must be untouched by the catch-up.
	if _, found := s.Today(ctx); found {
		t.Fatalf("catch-up must not create today's record")
	}
}

func TestLogCigaretteTwice(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	for want := 1; want <= 2; want++ {
		e, err := s.LogCigarette(ctx)
		if err != nil {
			t.Fatalf("log: %v", err)
		}
		if e.Cigarettes != want {
			t.Fatalf("expected count %d, got %d", want, e.Cigarettes)
		}
		if e.Evening != entry.Failure {
			t.Fatalf("logging must fail the day, got %v", e.Evening)
		}
	}

	if ms.appends != 2 {
		t.Fatalf("expected 2 appended log events, got %d", ms.appends)
	}
}

func TestLogThenCompleteTrueResetsCount(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	if _, err := s.LogCigarette(ctx); err != nil {
		t.Fatalf("log: %v", err)
	}

	e, err := s.CompleteEvening(ctx, CompleteOptions{Completed: true})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if e.Cigarettes != 0 || e.Evening != entry.Success {
		t.Fatalf("explicit smoke-free claim must reset the day: %+v", e)
	}
}

func TestLogCigarettePreservesUnknownFields(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	seedEntry(ms, "2026-09-01", store.Record{"custom_field": "keep me"})

	if _, err := s.LogCigarette(ctx); err != nil {
		t.Fatalf("log: %v", err)
	}

	rec := ms.records[entryPathFor("2026-09-01")]
	if rec["custom_field"] != "keep me" {
		t.Fatalf("unknown field dropped: %v", rec)
	}
}

func TestPendingYesterday(t *testing.T) {
	ms := newMemStore()
	s := newTestService(ms)
	ctx := context.Background()

	if _, pending := s.PendingYesterday(ctx); pending {
		t.Fatalf("no record means nothing to catch up")
	}

	seedEntry(ms, "2026-08-31", store.Record{entry.FieldGoal: "forgot to confirm"})
	e, pending := s.PendingYesterday(ctx)
	if !pending || e.MorningGoal != "forgot to confirm" {
		t.Fatalf("expected pending yesterday, got %v / %v", e, pending)
	}

	seedEntry(ms, "2026-08-31", store.Record{entry.FieldGoal: "forgot to confirm", entry.FieldEvening: true})
	if _, pending := s.PendingYesterday(ctx); pending {
		t.Fatalf("decided yesterday is not pending")
	}
}

func TestReadsDegradeOnStoreFailure(t *testing.T) {
	ms := newMemStore()
	seedEntry(ms, "2026-09-01", store.Record{entry.FieldGoal: "there"})
	ms.failReads = true
	s := newTestService(ms)
	ctx := context.Background()

	if _, found := s.Today(ctx); found {
		t.Fatalf("read failure must degrade to absent")
	}
	if hist := s.History(ctx, 30, OrderDesc); len(hist) != 0 {
		t.Fatalf("history must degrade to empty, got %d", len(hist))
	}
	if streak := s.Streak(ctx); streak != 0 {
		t.Fatalf("streak must degrade to zero, got %d", streak)
	}
}
