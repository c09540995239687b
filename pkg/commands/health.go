package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/runner/health"
)

func addHealth(topLevel *cobra.Command) {
	all := false

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show the body-recovery milestones",
		Example: `
rauchfrei health
rauchfrei health --all
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			h := health.Health{
				All:     all,
				Service: s,
			}
			err = h.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show the full timeline.")

	topLevel.AddCommand(cmd)
}
