package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newInsertCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "insert POS TEXT",
		Short: "Insert TEXT at byte offset POS and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[0], err)
			}

			e, err := openEditor(file)
			if err != nil {
				return err
			}
			defer e.Free()

			if err := e.Insert(pos, []byte(args[1])); err != nil {
				return err
			}
			e.Snapshot()
			if err := e.Save(file); err != nil {
				return err
			}
			touchRecent(file, e.Size())

			fmt.Println(e.Size())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file to edit")
	cmd.MarkFlagRequired("file")
	return cmd
}
