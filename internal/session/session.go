// Package session tracks a small JSON ledger of recently opened files.
// It is pure bookkeeping for the CLI: it never participates in
// undo/redo and has no effect on document semantics.
package session

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Entry describes one recently opened file.
type Entry struct {
	Path       string    `json:"path"`
	Size       int       `json:"size"`
	LastOpened time.Time `json:"last_opened"`
}

// Ledger is the in-memory view of the recent-files JSON document at its
// path. Open populates it; Touch mutates it and Save persists the
// result.
type Ledger struct {
	path     string
	maxFiles int
	raw      string
}

// Open reads the ledger at path, treating a missing file as an empty
// ledger. maxFiles bounds how many entries Touch retains.
func Open(path string, maxFiles int) (*Ledger, error) {
	l := &Ledger{path: path, maxFiles: maxFiles, raw: `{"entries":[]}`}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, err
	}
	if gjson.ValidBytes(data) {
		l.raw = string(data)
	}
	return l, nil
}

// Entries returns the ledger's entries, most recently opened first.
func (l *Ledger) Entries() []Entry {
	result := gjson.Get(l.raw, "entries")
	entries := make([]Entry, 0, len(result.Array()))
	result.ForEach(func(_, v gjson.Result) bool {
		t, _ := time.Parse(time.RFC3339, v.Get("last_opened").String())
		entries = append(entries, Entry{
			Path:       v.Get("path").String(),
			Size:       int(v.Get("size").Int()),
			LastOpened: t,
		})
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastOpened.After(entries[j].LastOpened)
	})
	return entries
}

// Touch records path as opened just now with the given size, replacing
// any existing entry for the same (absolute) path, then trims the
// ledger to maxFiles entries.
func (l *Ledger) Touch(path string, size int, when time.Time) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	entries := l.Entries()
	filtered := entries[:0]
	for _, e := range entries {
		if e.Path != abs {
			filtered = append(filtered, e)
		}
	}
	filtered = append([]Entry{{Path: abs, Size: size, LastOpened: when}}, filtered...)

	if l.maxFiles > 0 && len(filtered) > l.maxFiles {
		filtered = filtered[:l.maxFiles]
	}

	raw := `{"entries":[]}`
	for _, e := range filtered {
		var err error
		raw, err = sjson.Set(raw, "entries.-1", map[string]any{
			"path":        e.Path,
			"size":        e.Size,
			"last_opened": e.LastOpened.Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
	}

	l.raw = raw
	return nil
}

// Save writes the ledger to its path, creating parent directories as
// needed.
func (l *Ledger) Save() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(l.path, []byte(l.raw), 0o644)
}
