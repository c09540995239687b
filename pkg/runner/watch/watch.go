// Package watch provides the runner that follows store changes, keeping a
// second terminal live while entries are written elsewhere.
package watch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/store"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

type Watch struct {
	Service *tracker.Service
}

// Do renders the dashboard, then re-renders it on every store change until
// ctx is cancelled.
func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	events, err := n.Service.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	n.render(ctx)

	faint := color.New(color.Faint)
	_, _ = faint.Fprintln(color.Output, "watching for changes, ctrl-c to stop")

	for ev := range events {
		if ev.Type == store.EventBucketChanged {
			_, _ = faint.Fprintf(color.Output, "changed: %s\n", ev.Bucket)
		}
		n.render(ctx)
		_, _ = faint.Fprintln(color.Output, "watching for changes, ctrl-c to stop")
	}

	// The channel closes on cancellation; a ctrl-c exit is not an error.
	return nil
}

func (n *Watch) render(ctx context.Context) {
	day := dates.Format(n.Service.Clock.Now())
	e, _ := n.Service.Entry(ctx, day)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Day(day, e, n.Service.Classify(day, e))
	pp.NewLine()
	pp.Streak(n.Service.Streak(ctx))
	pp.NewLine()
}
