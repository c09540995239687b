// Package settings provides the runner for the pack-price configuration used
// by the savings math.
package settings

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/rauchfrei/pkg/printers"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

type Settings struct {
	// PackPrice and PerPack update the stored settings when positive; zero
	// leaves the stored value alone.
	PackPrice float64
	PerPack   int

	Service *tracker.Service
}

func (n *Settings) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show settings, no tracker")
	}

	if n.PackPrice > 0 || n.PerPack > 0 {
		err := n.Service.SaveSettings(ctx, tracker.Settings{
			PackPrice:         n.PackPrice,
			CigarettesPerPack: n.PerPack,
		})
		if err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("settings")
	pp.Settings(n.Service.Settings(ctx))
	pp.NewLine()

	return nil
}
