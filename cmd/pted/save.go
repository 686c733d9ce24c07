package main

import (
	"github.com/spf13/cobra"
)

// newSaveCmd re-saves a file through the engine's Load/Save path,
// useful for confirming a document round-trips byte for byte.
func newSaveCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Load FILE and save it back unmodified",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(file)
			if err != nil {
				return err
			}
			defer e.Free()

			if err := e.Save(file); err != nil {
				return err
			}
			touchRecent(file, e.Size())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file to edit")
	cmd.MarkFlagRequired("file")
	return cmd
}
