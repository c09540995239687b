package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/rauchfrei/pkg/glyph"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

var weekdayLabels = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Week renders the Monday-start week as a compact two-row grid, with a
// detail line per recorded day below it.
func (pp *PrettyPrint) Week(week []tracker.WeekDay) {
	l := color.New(color.Faint, color.FgWhite)
	b := color.New(color.Bold, color.FgHiWhite)

	for i := range week {
		_, _ = l.Fprintf(color.Output, "%3s ", weekdayLabels[i%len(weekdayLabels)])
	}
	_, _ = fmt.Fprint(color.Output, "\n")

	for _, d := range week {
		mark := glyph.ForStatus(string(d.Status))
		if d.Status.IsToday() {
			_, _ = b.Fprintf(color.Output, "%3s ", mark.String())
		} else {
			_, _ = l.Fprintf(color.Output, "%3s ", mark.String())
		}
	}
	_, _ = fmt.Fprint(color.Output, "\n\n")

	for _, d := range week {
		if d.Entry == nil {
			continue
		}
		pp.Day(d.Day, d.Entry, d.Status)
	}
}
