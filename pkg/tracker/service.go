// Package tracker is the daily-entry reconciliation engine. It sits between
// the key-value store and the presentation layer: date-key handling, entry
// CRUD, history windows, streaks, and day-status classification all live
// here, so the rendering code only ever sees precomputed values.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/entry"
	"tableflip.dev/rauchfrei/pkg/store"
)

var (
	// ErrNoPersistence guards every operation before it touches the store.
	ErrNoPersistence = errors.New("tracker: no persistence configured")

	// ErrEmptyGoal rejects blank goal text before it reaches the store.
	ErrEmptyGoal = errors.New("tracker: goal text required")

	// ErrNegativeCount rejects negative cigarette overrides.
	ErrNegativeCount = errors.New("tracker: cigarette count must not be negative")
)

// Service coordinates all tracker operations for one user.
//
// Mutations propagate store errors to the caller: user input must never be
// dropped silently. Reads degrade instead, returning absent or zero values
// and logging the failure, because a dashboard that shows "no data" beats a
// crashed one. There is no cross-call locking; within one logical update the
// service sequences read, merge, write itself, and the last concurrent merge
// on a day wins (single demo user, accepted).
type Service struct {
	Persistence store.Persistence
	Clock       dates.Clock
	User        string
	Prefix      string
	Log         *log.Logger

	// Defaults for the settings record when none was saved yet.
	DefaultPackPrice float64
	DefaultPerPack   int
}

// NewService wires a service from persistence and config.
func NewService(p store.Persistence, cfg store.Config) *Service {
	return &Service{
		Persistence:      p,
		Clock:            dates.System(),
		User:             cfg.User(),
		Prefix:           cfg.Prefix(),
		Log:              log.NewWithOptions(os.Stderr, log.Options{Prefix: "tracker"}),
		DefaultPackPrice: cfg.PackPrice(),
		DefaultPerPack:   cfg.CigarettesPerPack(),
	}
}

func (s *Service) today() dates.Day {
	return dates.Format(s.Clock.Now())
}

func (s *Service) entriesPrefix() string {
	return fmt.Sprintf("%s_dailyEntries/%s", s.Prefix, s.User)
}

func (s *Service) entryPath(day dates.Day) string {
	return fmt.Sprintf("%s/%s", s.entriesPrefix(), dates.Key(day))
}

func (s *Service) logsPrefix() string {
	return fmt.Sprintf("%s_cigaretteLogs/%s", s.Prefix, s.User)
}

func (s *Service) settingsPath() string {
	return fmt.Sprintf("%s_userSettings/%s", s.Prefix, s.User)
}

func (s *Service) warn(msg string, keyvals ...any) {
	if s.Log != nil {
		s.Log.Warn(msg, keyvals...)
	}
}

// Entry reads one day's record. Absence is a normal state, not an error;
// store failures degrade to absent and are logged.
func (s *Service) Entry(ctx context.Context, day dates.Day) (*entry.DailyEntry, bool) {
	if s.Persistence == nil {
		return nil, false
	}
	rec, found, err := s.Persistence.Read(ctx, s.entryPath(day))
	if err != nil {
		s.warn("read entry failed", "day", day, "err", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	return entry.FromRecord(day, rec), true
}

// Today reads today's record.
func (s *Service) Today(ctx context.Context) (*entry.DailyEntry, bool) {
	return s.Entry(ctx, s.today())
}

// PendingYesterday reports yesterday's entry when it still needs an evening
// decision: a goal was set but evening_completed never became a boolean.
// The caller can offer the catch-up flow for it.
func (s *Service) PendingYesterday(ctx context.Context) (*entry.DailyEntry, bool) {
	e, found := s.Entry(ctx, s.today().AddDays(-1))
	if !found || !e.Pending() {
		return nil, false
	}
	return e, true
}

// SetMorningGoal merges the goal text into today's record, creating it when
// absent. created_at is set exactly once; updated_at refreshes on every
// mutation.
func (s *Service) SetMorningGoal(ctx context.Context, goal string) (*entry.DailyEntry, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ErrEmptyGoal
	}
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}

	now := s.Clock.Now()
	day := dates.Format(now)
	path := s.entryPath(day)

	current, found, err := s.Persistence.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	partial := store.Record{
		entry.FieldUserID:  s.User,
		entry.FieldDate:    day.String(),
		entry.FieldGoal:    goal,
		entry.FieldUpdated: entry.FormatTime(now),
	}
	if created, _ := current[entry.FieldCreated].(string); !found || created == "" {
		partial[entry.FieldCreated] = entry.FormatTime(now)
	}

	merged, err := s.Persistence.Merge(ctx, path, partial)
	if err != nil {
		return nil, err
	}
	return entry.FromRecord(day, merged), nil
}

// CompleteOptions parameterizes the evening check.
type CompleteOptions struct {
	Completed  bool
	Reflection string

	// Date targets a past day for the catch-up flow; zero means today.
	Date dates.Day

	// CountOverride wins over both the logged count and the completed=true
	// zeroing, for "forgot to log" corrections.
	CountOverride *int
}

// CompleteEvening merges the evening decision into the target day's record.
// Claiming a smoke-free day forces the cigarette count back to zero unless an
// explicit override accompanies the claim; this deliberately lets a later
// "I did not smoke" assertion erase a logged count.
func (s *Service) CompleteEvening(ctx context.Context, opts CompleteOptions) (*entry.DailyEntry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}

	now := s.Clock.Now()
	day := opts.Date
	if day == "" {
		day = dates.Format(now)
	}

	completed, _ := entry.CompletionOf(opts.Completed).Bool()
	partial := store.Record{
		entry.FieldEvening: completed,
		entry.FieldUpdated: entry.FormatTime(now),
	}
	if note := strings.TrimSpace(opts.Reflection); note != "" {
		partial[entry.FieldReflection] = note
	}
	switch {
	case opts.CountOverride != nil:
		if *opts.CountOverride < 0 {
			return nil, ErrNegativeCount
		}
		partial[entry.FieldCigarettes] = *opts.CountOverride
	case opts.Completed:
		partial[entry.FieldCigarettes] = 0
	}

	merged, err := s.Persistence.Merge(ctx, s.entryPath(day), partial)
	if err != nil {
		return nil, err
	}
	return entry.FromRecord(day, merged), nil
}

// LogCigarette appends one smoking event for "now", bumps today's count, and
// fails the day outright. A later CompleteEvening(true) can still flip the
// day back to clean, which resets the count to zero; that tension is kept
// from the product, not smoothed over here.
func (s *Service) LogCigarette(ctx context.Context) (*entry.DailyEntry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}

	now := s.Clock.Now()
	day := dates.Format(now)

	event := entry.CigaretteLog{Timestamp: now, Date: day}
	if _, err := s.Persistence.Append(ctx, s.logsPrefix(), event.Record()); err != nil {
		return nil, err
	}

	path := s.entryPath(day)
	current, _, err := s.Persistence.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	// Full read-spread-write, preserving any fields this code does not know
	// about, then overwriting the ones the event decides.
	rec := store.Record{}
	for k, v := range current {
		rec[k] = v
	}
	count := entry.FromRecord(day, current).Cigarettes
	rec[entry.FieldUserID] = s.User
	rec[entry.FieldDate] = day.String()
	rec[entry.FieldCigarettes] = count + 1
	rec[entry.FieldEvening] = false
	rec[entry.FieldUpdated] = entry.FormatTime(now)
	if created, _ := rec[entry.FieldCreated].(string); created == "" {
		rec[entry.FieldCreated] = entry.FormatTime(now)
	}

	if err := s.Persistence.Write(ctx, path, rec); err != nil {
		return nil, err
	}
	return entry.FromRecord(day, rec), nil
}
