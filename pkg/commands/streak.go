package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/runner/streak"
)

func addStreak(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the current run of smoke-free days",
		Example: `
rauchfrei streak
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			r := streak.Streak{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
