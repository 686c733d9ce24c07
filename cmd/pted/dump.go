package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
)

// newDumpCmd writes a file's logical content to stdout by driving
// Editor.Iterate, exercising the read path independently of Save.
func newDumpCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write FILE's document content to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(file)
			if err != nil {
				return err
			}
			defer e.Free()

			w := bufio.NewWriter(os.Stdout)
			iterErr := e.Iterate(0, func(_ int, data []byte) bool {
				_, werr := w.Write(data)
				return werr == nil
			})
			if iterErr != nil {
				return iterErr
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file to read")
	cmd.MarkFlagRequired("file")
	return cmd
}
