package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lumenedit/pted/internal/engine/region"
)

// tempName returns a sibling staging path for filename. The UUID suffix
// keeps a save from colliding with a .tmp file a previous, interrupted
// save left behind, instead of silently reusing (and corrupting) it.
func tempName(filename string) string {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)
	return filepath.Join(dir, fmt.Sprintf(".%s.tmp.%s", base, uuid.NewString()))
}

func translateRegionErr(err error) error {
	switch {
	case errors.Is(err, region.ErrOutOfMemory):
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	case errors.Is(err, region.ErrNotRegular):
		return fmt.Errorf("%w: %v", ErrNotRegular, err)
	default:
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
}

// Save writes the document to a sibling temporary file, truncated and
// mapped to exactly Size() bytes, streams the document into it via
// Iterate, closes the mapping, and renames it over filename — atomic on
// POSIX filesystems. On success the current undo-stack top is recorded
// so Modified reports false until the next edit, and a fresh Action
// boundary is opened (equivalent to Snapshot).
//
// On any failure the temporary file is closed and removed and the
// document is left exactly as it was before the call; filename is not
// touched.
func (e *Editor) Save(filename string) error {
	tmpPath := tempName(filename)

	out, err := region.CreateOutput(tmpPath, 0o600, e.size)
	if err != nil {
		return translateRegionErr(err)
	}

	dest := out.Bytes()
	writeErr := e.Iterate(0, func(pos int, chunk []byte) bool {
		copy(dest[pos:pos+len(chunk)], chunk)
		return true
	})
	if writeErr != nil {
		out.Close()
		os.Remove(tmpPath)
		return writeErr
	}

	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return translateRegionErr(err)
	}

	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename %s to %s: %v", ErrIO, tmpPath, filename, err)
	}

	e.filename = filename
	if top, ok := e.hist.TopUndo(); ok {
		e.savedAction = top
	} else {
		e.savedAction = nil
	}
	e.Snapshot()

	return nil
}
