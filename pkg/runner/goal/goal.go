package goal

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

type Goal struct {
	Goal    string
	Service *tracker.Service
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set a goal, no tracker")
	}

	e, err := n.Service.SetMorningGoal(ctx, n.Goal)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowNotes: true}
	fmt.Println("")
	pp.Day(e.Date, e, n.Service.Classify(e.Date, e))

	if y, pending := n.Service.PendingYesterday(ctx); pending {
		pp.NewLine()
		pp.PendingYesterday(y.Date)
	}
	pp.NewLine()

	return nil
}
