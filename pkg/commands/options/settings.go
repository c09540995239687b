package options

import (
	"github.com/spf13/cobra"
)

// SettingsOptions
type SettingsOptions struct {
	PackPrice float64
	PerPack   int
}

func AddSettingsArgs(cmd *cobra.Command, o *SettingsOptions) {
	cmd.Flags().Float64Var(&o.PackPrice, "pack-price", 0,
		"Price of one pack, used by the savings math.")
	cmd.Flags().IntVar(&o.PerPack, "per-pack", 0,
		"Cigarettes in one pack.")
}
