package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRedoCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "redo",
		Short: "Redo the most recently undone action and save (meaningful inside script)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(file)
			if err != nil {
				return err
			}
			defer e.Free()

			if err := e.Redo(); err != nil {
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
