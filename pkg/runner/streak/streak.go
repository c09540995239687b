package streak

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

type Streak struct {
	Service *tracker.Service
}

func (n *Streak) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show the streak, no tracker")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Streak(n.Service.Streak(ctx))
	pp.NewLine()

	return nil
}
