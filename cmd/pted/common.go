package main

import (
	"time"

	"github.com/lumenedit/pted/internal/engine/editor"
	"github.com/lumenedit/pted/internal/session"
)

func openEditor(path string) (*editor.Editor, error) {
	return editor.Load(path, editor.WithBufferCapacity(cfg.Engine.BufferCapacity))
}

// touchRecent records path in the session ledger after a successful
// Save. Ledger errors are not fatal to the command: the ledger
// is pure bookkeeping and never affects document semantics.
func touchRecent(path string, size int) {
	l, err := session.Open(cfg.Session.Path, cfg.Session.MaxFiles)
	if err != nil {
		return
	}
	if err := l.Touch(path, size, time.Now()); err != nil {
		return
	}
	_ = l.Save()
}
