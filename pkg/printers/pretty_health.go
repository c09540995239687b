package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/rauchfrei/pkg/glyph"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

const barWidth = 20

// Recovery renders the milestone window around the current recovery point,
// with a progress bar toward the next milestone.
func (pp *PrettyPrint) Recovery(r tracker.Recovery) {
	faint := color.New(color.Faint, color.Italic)

	if !r.Known {
		_, _ = faint.Fprintln(color.Output, "no cigarette on record, the recovery clock starts with the first one you log")
		return
	}

	head := color.New(color.Bold)
	_, _ = head.Fprintf(color.Output, "%s smoke-free for %s\n", glyph.Milestone, fmtDuration(r.Elapsed))
	pp.NewLine()

	achieved := r.AchievedIndex()
	for _, m := range r.Visible() {
		pp.milestone(m, r, achieved)
	}
}

// Milestones renders the full recovery timeline.
func (pp *PrettyPrint) Milestones(r tracker.Recovery) {
	achieved := -1
	if r.Known {
		achieved = r.AchievedIndex()
	}
	for _, m := range tracker.Milestones() {
		pp.milestone(m, r, achieved)
	}
}

func (pp *PrettyPrint) milestone(m tracker.Milestone, r tracker.Recovery, achieved int) {
	done := color.New(color.FgGreen)
	next := color.New(color.Bold, color.FgHiWhite)
	faint := color.New(color.Faint)

	idx := indexOf(m)
	switch {
	case idx <= achieved:
		_, _ = done.Fprintf(color.Output, "✓ %-14s %s\n", m.Title, faint.Sprint(m.Description))
	case idx == achieved+1 && r.Known:
		_, _ = next.Fprintf(color.Output, "› %-14s %s\n", m.Title, faint.Sprint(m.Description))
		_, _ = next.Fprintf(color.Output, "  %s %3.0f%%\n", bar(r.ProgressToNext()), r.ProgressToNext())
	default:
		_, _ = faint.Fprintf(color.Output, "  %-14s %s\n", m.Title, m.Description)
	}
}

func indexOf(m tracker.Milestone) int {
	for i, known := range tracker.Milestones() {
		if known.ID == m.ID {
			return i
		}
	}
	return -1
}

func bar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// fmtDuration renders a duration in the largest two useful units, day
// granularity and up once past 48 hours.
func fmtDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days >= 365:
		return fmt.Sprintf("%dy %dd", days/365, days%365)
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
