package week

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

// Week renders the Monday-start overview of the current week.
type Week struct {
	ShowNotes bool
	Service   *tracker.Service
}

func (n *Week) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show the week, no tracker")
	}

	days := n.Service.Week(ctx)

	pp := printers.PrettyPrint{ShowNotes: n.ShowNotes}
	fmt.Println("")
	pp.Title("this week")
	pp.NewLine()
	pp.Week(days)
	pp.NewLine()

	return nil
}
