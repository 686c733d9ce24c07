package main

import (
	"github.com/spf13/cobra"
)

// newSnapshotCmd closes the currently-open Action, a no-op standalone
// (Load never opens one) but meaningful inside script to group a run
// of edits into one undo unit.
func newSnapshotCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Close the current undo action (meaningful inside script)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(file)
			if err != nil {
				return err
			}
			defer e.Free()

			e.Snapshot()
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file to edit")
	cmd.MarkFlagRequired("file")
	return cmd
}
