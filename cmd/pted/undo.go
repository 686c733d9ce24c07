package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newUndoCmd and newRedoCmd exist mainly for the script sub-command,
// where several operations share one Editor. Run standalone against a
// freshly loaded file they always report ErrNothingToUndo /
// ErrNothingToRedo: Load never records a Change to undo.
func newUndoCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the most recent action and save (meaningful inside script)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(file)
			if err != nil {
				return err
			}
			defer e.Free()

			if err := e.Undo(); err != nil {
				return err
			}
			if err := e.Save(file); err != nil {
				return err
			}
			fmt.Println(e.Size())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file to edit")
	cmd.MarkFlagRequired("file")
	return cmd
}
