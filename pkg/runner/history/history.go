package history

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

// History renders the day table for a window ending today.
type History struct {
	// Window is the number of days to include; Label is its canonical
	// human-readable form (for example "2w").
	Window int
	Label  string

	Ascending bool
	ShowNotes bool

	Service *tracker.Service
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show history, no tracker")
	}

	order := tracker.OrderDesc
	if n.Ascending {
		order = tracker.OrderAsc
	}
	entries := n.Service.History(ctx, n.Window, order)

	pp := printers.PrettyPrint{ShowNotes: n.ShowNotes}
	fmt.Println("")
	pp.Title(fmt.Sprintf("last %s", n.Label))
	pp.History(dates.Format(n.Service.Clock.Now()), entries)

	return nil
}
