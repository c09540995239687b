package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/runner/savings"
)

func addSavings(topLevel *cobra.Command) {
	years := 10

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Show money and life regained by the current streak",
		Example: `
rauchfrei savings
rauchfrei savings --years 20
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			r := savings.Savings{
				Years:   years,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&years, "years", 10,
		"Years ahead for the keep-smoking projection.")

	topLevel.AddCommand(cmd)
}
