package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/commands/options"
	"tableflip.dev/rauchfrei/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	no := &options.NotesOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded days, newest first",
		Example: `
rauchfrei history
rauchfrei history --window 1mo --asc
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			days, label, err := wo.GetWindow()
			if err != nil {
				return err
			}
			s, err := newService()
			if err != nil {
				return err
			}
			h := history.History{
				Window:    days,
				Label:     label,
				Ascending: wo.Ascending,
				ShowNotes: no.ShowNotes,
				Service:   s,
			}
			err = h.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddNotesArg(cmd, no)

	topLevel.AddCommand(cmd)
}
