package smoke

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

// Smoke records one smoked cigarette for the current moment.
type Smoke struct {
	Service *tracker.Service
}

func (n *Smoke) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no tracker")
	}

	e, err := n.Service.LogCigarette(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowNotes: true}
	fmt.Println("")
	pp.Day(e.Date, e, n.Service.Classify(e.Date, e))
	pp.NewLine()

	return nil
}
