package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/commands/options"
	"tableflip.dev/rauchfrei/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	so := &options.SettingsOptions{}

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the pack price used by the savings math",
		Example: `
rauchfrei settings
rauchfrei settings --pack-price 9.50 --per-pack 20
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			r := settings.Settings{
				PackPrice: so.PackPrice,
				PerPack:   so.PerPack,
				Service:   s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSettingsArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
