package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rauchfrei/pkg/store"
	"tableflip.dev/rauchfrei/pkg/tracker"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "rauchfrei",
		Short: base.Wrap80("Smoke-free day tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addGoal(topLevel)
	addCheck(topLevel)
	addSmoke(topLevel)
	addHistory(topLevel)
	addStreak(topLevel)
	addWeek(topLevel)
	addHealth(topLevel)
	addSavings(topLevel)
	addSettings(topLevel)
	addKey(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

func newService() (*tracker.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return tracker.NewService(p, cfg), nil
}
