package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "delete POS LEN",
		Short: "Delete LEN bytes starting at byte offset POS and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[0], err)
			}
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[1], err)
			}

			e, err := openEditor(file)
			if err != nil {
				return err
			}
			defer e.Free()

			if err := e.Delete(pos, length); err != nil {
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
