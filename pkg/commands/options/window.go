package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rauchfrei/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Window    string
	Ascending bool
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", timeutil.DefaultWindow,
		`How far back to look, example: --window="2w".`)
	cmd.Flags().BoolVar(&o.Ascending, "asc", false,
		"List oldest days first.")
}

// GetWindow parses the window into a day count and its canonical label.
func (o *WindowOptions) GetWindow() (int, string, error) {
	return timeutil.ParseWindow(o.Window)
}
