package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/dates"
)

// CheckOptions
type CheckOptions struct {
	Smoked    bool
	Note      string
	Date      string
	Yesterday bool
	Count     int
}

func AddCheckArgs(cmd *cobra.Command, o *CheckOptions) {
	cmd.Flags().BoolVar(&o.Smoked, "smoked", false,
		"Record the day as smoked instead of smoke-free.")
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Attach a reflection note to the day.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Confirm a past day, example: --date="2026-08-31".`)
	cmd.Flags().BoolVar(&o.Yesterday, "yesterday", false,
		"Confirm yesterday instead of today.")
	cmd.Flags().IntVar(&o.Count, "count", 0,
		"Set the cigarette count for the day, overriding logged events.")
}

// GetDate resolves the targeted day; empty means today.
func (o *CheckOptions) GetDate(today dates.Day) (dates.Day, error) {
	if o.Date != "" {
		return dates.Parse(o.Date)
	}
	if o.Yesterday {
		return today.AddDays(-1), nil
	}
	return "", nil
}

// GetCount reports the count override, nil when the flag was not used.
func (o *CheckOptions) GetCount(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("count") {
		return nil
	}
	c := o.Count
	return &c
}
