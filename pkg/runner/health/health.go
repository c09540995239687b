// Package health provides the runner for the body-recovery timeline.
package health

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

type Health struct {
	// All shows the complete milestone timeline instead of the window around
	// the current recovery point.
	All bool

	Service *tracker.Service
}

func (n *Health) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show recovery, no tracker")
	}

	r := n.Service.Recovery(ctx)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	if n.All {
		pp.Milestones(r)
	} else {
		pp.Recovery(r)
	}
	pp.NewLine()

	return nil
}
