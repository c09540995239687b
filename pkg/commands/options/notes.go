package options

import (
	"github.com/spf13/cobra"
)

// NotesOptions
type NotesOptions struct {
	ShowNotes bool
}

func AddNotesArg(cmd *cobra.Command, o *NotesOptions) {
	cmd.Flags().BoolVar(&o.ShowNotes, "notes", false,
		"Show reflection notes.")
}
