package savings

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

// Savings summarizes what the current streak is worth in money and time.
type Savings struct {
	// Years sizes the keep-smoking projection; zero means the default.
	Years int

	Service *tracker.Service
}

func (n *Savings) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show savings, no tracker")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("savings")
	pp.Savings(n.Service.Savings(ctx, n.Years))
	pp.NewLine()

	return nil
}
