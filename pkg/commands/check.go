package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rauchfrei/pkg/commands/options"
	"tableflip.dev/rauchfrei/pkg/dates"
	"tableflip.dev/rauchfrei/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	co := &options.CheckOptions{}

	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"evening", "confirm"},
		Short:   "Confirm how the day went",
		Example: `
rauchfrei check
rauchfrei check --smoked --count 3
rauchfrei check --yesterday --note "family dinner"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}

			today := dates.Format(s.Clock.Now())
			day, err := co.GetDate(today)
			if err != nil {
				return err
			}
			if day.After(today) {
				return errors.New("can not confirm a day that has not happened")
			}

			c := check.Check{
				Completed: !co.Smoked,
				Note:      co.Note,
				Date:      day,
				Count:     co.GetCount(cmd),
				Service:   s,
			}
			err = c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCheckArgs(cmd, co)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
