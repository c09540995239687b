package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rauchfrei/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	text := ""

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Set the morning goal for today",
		Example: `
rauchfrei goal no cigarettes before noon
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the goal text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			g := goal.Goal{
				Goal:    text,
				Service: s,
			}
			err = g.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
