package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenedit/pted/internal/session"
)

func newRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened files, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := session.Open(cfg.Session.Path, cfg.Session.MaxFiles)
			if err != nil {
				return err
			}
			for _, e := range l.Entries() {
				fmt.Printf("%s\t%d\t%s\n", e.LastOpened.Format("2006-01-02T15:04:05"), e.Size, e.Path)
			}
			return nil
		},
	}
	return cmd
}
