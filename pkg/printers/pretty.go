package printers

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/entry"
	"tableflip.dev/rauchfrei/pkg/glyph"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

type PrettyPrint struct {
	ShowNotes bool
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Day prints the card for a single day: goal, outcome, and note.
func (pp *PrettyPrint) Day(day dates.Day, e *entry.DailyEntry, status tracker.Status) {
	head := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)

	mark := glyph.ForStatus(string(status))
	_, _ = head.Fprintf(color.Output, "%s %s\n", mark, day)

	if e == nil {
		_, _ = faint.Fprintln(color.Output, "   no record")
		return
	}
	if e.MorningGoal != "" {
		_, _ = fmt.Fprintf(color.Output, "   goal: %s\n", e.MorningGoal)
	}
	switch {
	case !e.Evening.Decided():
		_, _ = faint.Fprintln(color.Output, "   evening not confirmed")
	case e.Evening == entry.Success:
		_, _ = color.New(color.FgGreen).Fprintln(color.Output, "   smoke-free")
	case e.Cigarettes == 1:
		_, _ = color.New(color.FgRed).Fprintln(color.Output, "   1 cigarette")
	default:
		_, _ = color.New(color.FgRed).Fprintf(color.Output, "   %d cigarettes\n", e.Cigarettes)
	}
	if pp.ShowNotes && e.Reflection != "" {
		_, _ = faint.Fprintf(color.Output, "   note: %s\n", e.Reflection)
	}
}

// Streak prints the current run of smoke-free days.
func (pp *PrettyPrint) Streak(days int) {
	b := color.New(color.Bold, color.FgGreen)
	c := color.New(color.Faint)

	_, _ = b.Fprintf(color.Output, "%s %d", glyph.Streak, days)
	switch days {
	case 1:
		_, _ = c.Fprintln(color.Output, " smoke-free day")
	default:
		_, _ = c.Fprintln(color.Output, " smoke-free days")
	}
}

// PendingYesterday prints the catch-up hint for an unconfirmed yesterday.
func (pp *PrettyPrint) PendingYesterday(day dates.Day) {
	y := color.New(color.FgHiYellow, color.Italic)
	_, _ = y.Fprintf(color.Output, "%s %s is not confirmed yet, use: check --date %s\n", glyph.Pending, day, day)
}

// History renders the day table, classifying each row against today.
func (pp *PrettyPrint) History(today dates.Day, entries []*entry.DailyEntry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.MaxColWidth = 40
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint(" "), bold.Sprint("Goal"), bold.Sprint("Count"), bold.Sprint("Note"))
	for _, e := range entries {
		status := tracker.StatusOf(today, e.Date, e)
		mark := glyph.ForStatus(string(status))

		count := ""
		if e.Cigarettes > 0 {
			count = strconv.Itoa(e.Cigarettes)
		}
		tbl.AddRow(string(e.Date), mark.String(), e.MorningGoal, count, e.Reflection)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Savings renders the streak payoff summary.
func (pp *PrettyPrint) Savings(s tracker.Savings) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Streak"), fmt.Sprintf("%d days", s.StreakDays))
	tbl.AddRow(bold.Sprint("Daily average"), fmt.Sprintf("%d cigarettes", s.CigarettesPerDay))
	tbl.AddRow(bold.Sprint("Not smoked"), fmt.Sprintf("%d cigarettes", s.CigarettesAvoided))
	tbl.AddRow(bold.Sprint("Money saved"), fmt.Sprintf("%.2f", s.MoneySaved))
	tbl.AddRow(bold.Sprint("Life regained"), fmtDuration(s.LifeRegained))

	_, _ = fmt.Fprintln(color.Output, tbl)

	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(color.Output, "smoking on at %d a day costs %d days of life over %d years\n",
		s.CigarettesPerDay, s.LifeLostDays, s.ProjectionYears)
}

// Settings renders the pack configuration used by the savings math.
func (pp *PrettyPrint) Settings(s tracker.Settings) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Pack price"), fmt.Sprintf("%.2f", s.PackPrice))
	tbl.AddRow(bold.Sprint("Per pack"), fmt.Sprintf("%d cigarettes", s.CigarettesPerPack))
	tbl.AddRow(bold.Sprint("Per cigarette"), fmt.Sprintf("%.2f", s.PricePerCigarette()))

	_, _ = fmt.Fprintln(color.Output, tbl)
}
