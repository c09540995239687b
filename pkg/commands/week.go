package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/commands/options"
	"tableflip.dev/rauchfrei/pkg/runner/week"
)

func addWeek(topLevel *cobra.Command) {
	no := &options.NotesOptions{}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the current week, Monday first",
		Example: `
rauchfrei week
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			w := week.Week{
				ShowNotes: no.ShowNotes,
				Service:   s,
			}
			err = w.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddNotesArg(cmd, no)

	topLevel.AddCommand(cmd)
}
