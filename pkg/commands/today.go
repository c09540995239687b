package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/commands/options"
	"tableflip.dev/rauchfrei/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	no := &options.NotesOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's goal, outcome, and streak",
		Example: `
rauchfrei today
rauchfrei today --notes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			t := today.Today{
				ShowNotes: no.ShowNotes,
				Service:   s,
			}
			err = t.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddNotesArg(cmd, no)

	topLevel.AddCommand(cmd)
}
