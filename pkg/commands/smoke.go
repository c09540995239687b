package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rauchfrei/pkg/runner/smoke"
)

func addSmoke(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "smoke",
		Aliases: []string{"log", "cig"},
		Short:   "Log one smoked cigarette for right now",
		Example: `
rauchfrei smoke
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			r := smoke.Smoke{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
