// Package today provides the runner for the daily dashboard: today's card,
// the streak, and the catch-up hint for an unconfirmed yesterday.
package today

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

type Today struct {
	ShowNotes bool
	Service   *tracker.Service
}

func (n *Today) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show today, no tracker")
	}

	day := dates.Format(n.Service.Clock.Now())
	e, _ := n.Service.Today(ctx)

	pp := printers.PrettyPrint{ShowNotes: n.ShowNotes}
	fmt.Println("")
	pp.Day(day, e, n.Service.Classify(day, e))
	pp.NewLine()
	pp.Streak(n.Service.Streak(ctx))

	if y, pending := n.Service.PendingYesterday(ctx); pending {
		pp.NewLine()
		pp.PendingYesterday(y.Date)
	}
	pp.NewLine()

	return nil
}
