// Package check provides the runner for the evening confirmation, including
// the catch-up flow for a day left undecided.
package check

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

type Check struct {
	Completed bool
	Note      string

	// Date targets a past day; empty means today.
	Date dates.Day

	// Count, when set, overrides the stored cigarette count.
	Count *int

	Service *tracker.Service
}

func (n *Check) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not check, no tracker")
	}

	e, err := n.Service.CompleteEvening(ctx, tracker.CompleteOptions{
		Completed:     n.Completed,
		Reflection:    n.Note,
		Date:          n.Date,
		CountOverride: n.Count,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowNotes: true}
	fmt.Println("")
	pp.Day(e.Date, e, n.Service.Classify(e.Date, e))
	pp.NewLine()
	pp.Streak(n.Service.Streak(ctx))
	pp.NewLine()

	return nil
}
