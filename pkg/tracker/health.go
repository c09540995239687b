package tracker

import (
	"context"
	"time"
)

// Milestone is one fixed point on the body-recovery timeline.
type Milestone struct {
	ID          string
	After       time.Duration
	Title       string
	Description string
}

const oneDay = 24 * time.Hour

// milestones is ordered by After; the timeline logic depends on that.
var milestones = []Milestone{
	{ID: "start", After: 0, Title: "The start", Description: "Your journey begins now."},
	{ID: "20m", After: 20 * time.Minute, Title: "20 minutes", Description: "Pulse and blood pressure return to normal."},
	{ID: "8h", After: 8 * time.Hour, Title: "8 hours", Description: "Carbon monoxide in the blood drops back to a normal level."},
	{ID: "24h", After: oneDay, Title: "24 hours", Description: "Heart attack risk begins to fall."},
	{ID: "48h", After: 2 * oneDay, Title: "48 hours", Description: "Smell and taste start to recover."},
	{ID: "72h", After: 3 * oneDay, Title: "3 days", Description: "Breathing gets easier and energy rises."},
	{ID: "2w", After: 14 * oneDay, Title: "2 weeks", Description: "Circulation stabilizes and lung function improves."},
	{ID: "3m", After: 90 * oneDay, Title: "3 months", Description: "Coughing and shortness of breath decrease."},
	{ID: "1y", After: 365 * oneDay, Title: "1 year", Description: "Risk of coronary heart disease is cut in half."},
	{ID: "5y", After: 5 * 365 * oneDay, Title: "5 years", Description: "Stroke risk matches that of a non-smoker."},
	{ID: "10y", After: 10 * 365 * oneDay, Title: "10 years", Description: "Lung cancer risk is cut in half."},
	{ID: "15y", After: 15 * 365 * oneDay, Title: "15 years", Description: "Heart disease risk is like someone who never smoked."},
}

// Milestones returns the full recovery timeline.
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	copy(out, milestones)
	return out
}

// Recovery is the recovery timeline evaluated at one instant.
type Recovery struct {
	// Elapsed is the time since the last cigarette; negative never occurs.
	Elapsed time.Duration

	// Known is false when history holds no smoking evidence at all; the
	// timeline then shows the fresh-start view.
	Known bool
}

// Recovery evaluates the timeline against the most recent smoking event.
func (s *Service) Recovery(ctx context.Context) Recovery {
	last, ok := s.LastCigarette(ctx)
	if !ok {
		return Recovery{}
	}
	elapsed := s.Clock.Now().Sub(last)
	if elapsed < 0 {
		elapsed = 0
	}
	return Recovery{Elapsed: elapsed, Known: true}
}

// AchievedIndex returns the index of the highest milestone reached, or -1
// when nothing is known. With a known last cigarette the start milestone
// (after zero) is always reached.
func (r Recovery) AchievedIndex() int {
	if !r.Known {
		return -1
	}
	achieved := -1
	for i, m := range milestones {
		if r.Elapsed >= m.After {
			achieved = i
		} else {
			break
		}
	}
	return achieved
}

// Achieved reports whether the given milestone has been reached.
func (r Recovery) Achieved(m Milestone) bool {
	return r.Known && r.Elapsed >= m.After
}

// Next returns the first milestone not yet reached.
func (r Recovery) Next() (Milestone, bool) {
	idx := r.AchievedIndex()
	if idx+1 >= len(milestones) {
		return Milestone{}, false
	}
	return milestones[idx+1], true
}

// Visible selects the three milestones worth showing: the previous, the
// current, and the next one, shifted at either end of the timeline so three
// are always returned.
func (r Recovery) Visible() []Milestone {
	idx := r.AchievedIndex()
	switch {
	case idx <= 0:
		return append([]Milestone{}, milestones[0:3]...)
	case idx >= len(milestones)-1:
		return append([]Milestone{}, milestones[len(milestones)-3:]...)
	default:
		return append([]Milestone{}, milestones[idx-1:idx+2]...)
	}
}

// ProgressToNext reports the percent progress from the current milestone to
// the next one, 0..100. A finished timeline reports 100; an unknown start
// reports 0.
func (r Recovery) ProgressToNext() float64 {
	if !r.Known {
		return 0
	}
	next, ok := r.Next()
	if !ok {
		return 100
	}
	idx := r.AchievedIndex()
	var from time.Duration
	if idx >= 0 {
		from = milestones[idx].After
	}
	span := next.After - from
	if span <= 0 {
		return 0
	}
	progress := float64(r.Elapsed-from) / float64(span) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
