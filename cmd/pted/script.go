package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumenedit/pted/internal/engine/editor"
)

// newScriptCmd runs a sequence of operations against a single Editor
// loaded once from --file, reading one command per line from a script
// file argument or, with no argument, from stdin. This is where undo,
// redo, and snapshot are meaningful: they act on history accumulated
// earlier in the same run. Nothing is written back to --file unless
// the script itself issues a save line.
//
// Recognized lines: insert POS TEXT, delete POS LEN, replace POS TEXT,
// undo, redo, snapshot, save, dump. Blank lines and lines starting with
// # are ignored.
func newScriptCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "script [SCRIPT-FILE]",
		Short: "Run a sequence of operations against one open document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			e, err := openEditor(file)
			if err != nil {
				return err
			}
			defer e.Free()

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			scanner := bufio.NewScanner(r)
			line := 0
			for scanner.Scan() {
				line++
				if err := runScriptLine(e, out, file, scanner.Text()); err != nil {
					return fmt.Errorf("line %d: %w", line, err)
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file to edit")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runScriptLine(e *editor.Editor, out *bufio.Writer, file, text string) error {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return nil
	}

	fields := strings.SplitN(text, " ", 3)
	switch fields[0] {
	case "insert":
		if len(fields) != 3 {
			return fmt.Errorf("insert requires POS and TEXT")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		return e.Insert(pos, []byte(fields[2]))

	case "delete":
		if len(fields) != 3 {
			return fmt.Errorf("delete requires POS and LEN")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		length, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		return e.Delete(pos, length)

	case "replace":
		if len(fields) != 3 {
			return fmt.Errorf("replace requires POS and TEXT")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		return e.Replace(pos, []byte(fields[2]))

	case "undo":
		return e.Undo()

	case "redo":
		return e.Redo()

	case "snapshot":
		e.Snapshot()
		return nil

	case "save":
		return e.Save(file)

	case "dump":
		return e.Iterate(0, func(_ int, data []byte) bool {
			out.Write(data)
			return true
		})

	default:
		return fmt.Errorf("unrecognized command %q", fields[0])
	}
}
