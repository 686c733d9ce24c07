package editor

import (
	"github.com/lumenedit/pted/internal/engine/history"
	"github.com/lumenedit/pted/internal/engine/piece"
	"github.com/lumenedit/pted/internal/engine/region"
)

// Editor holds everything one open document needs: the original mapped
// region, the insertion buffer chain, the piece allocator, the two
// sentinels bracketing the logical sequence, the undo/redo history, the
// Action that was topmost on undo at the last successful save (used by
// Modified), the current document size, and the file the editor was
// loaded from or last saved to (empty for a buffer never associated with
// a file).
type Editor struct {
	original *region.OriginalRegion
	store    *region.Store
	alloc    *piece.Allocator

	begin, end *piece.Piece

	hist        *history.Stack
	savedAction *history.Action

	size     int
	filename string
}

// New creates an editor over an empty document. Equivalent to Load with
// no filename: sentinels are linked directly to each other.
func New(opts ...Option) *Editor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Editor{
		store: region.NewStore(cfg.bufferCapacity),
		alloc: piece.NewAllocator(),
		begin: piece.NewSentinel(),
		end:   piece.NewSentinel(),
	}
	e.hist = history.NewStack(e.alloc)
	e.linkSentinels()
	return e
}

func (e *Editor) linkSentinels() {
	e.begin.SetNext(e.end)
	e.end.SetPrev(e.begin)
}

// Size returns the current document size in bytes.
func (e *Editor) Size() int { return e.size }

// Filename returns the path the editor was last loaded from or saved
// to, or "" if the document has never been associated with a file.
func (e *Editor) Filename() string { return e.filename }

// Modified reports whether the document has unsaved changes: true iff
// the top of the undo stack is not the Action recorded at the last
// successful save. Comparison is by identity, not by content, so a
// sequence of edits that happens to restore the original bytes is still
// reported as modified.
func (e *Editor) Modified() bool {
	top, ok := e.hist.TopUndo()
	if !ok {
		return e.savedAction != nil
	}
	return top != e.savedAction
}

// Snapshot closes the currently-open Action; the next edit opens a fresh
// one. This is how a caller groups a run of edits into one undo unit.
func (e *Editor) Snapshot() {
	e.hist.Snapshot()
}

// Undo reverses the most recent Action. Returns ErrNothingToUndo if the
// undo stack is empty.
func (e *Editor) Undo() error {
	a, err := e.hist.Undo()
	if err != nil {
		return ErrNothingToUndo
	}
	for _, c := range a.Changes() {
		e.size += c.Old.Len - c.New.Len
	}
	return nil
}

// Redo reapplies the most recently undone Action. Returns
// ErrNothingToRedo if the redo stack is empty.
func (e *Editor) Redo() error {
	a, err := e.hist.Redo()
	if err != nil {
		return ErrNothingToRedo
	}
	for _, c := range a.Changes() {
		e.size += c.New.Len - c.Old.Len
	}
	return nil
}

// applySwap performs one span swap, records it as a Change in the
// currently-open Action (opening one if needed), and updates size. It
// is the only way edit operations (Insert, Delete) mutate the logical
// sequence, so every successful edit is automatically undoable.
func (e *Editor) applySwap(old, new piece.Span) {
	piece.Swap(old, new)
	e.hist.Record(history.Change{Old: old, New: new})
	e.size += new.Len - old.Len
}

// Free releases every resource the editor owns: all pieces, all
// insertion buffers, and the original mapped region. The editor must
// not be used afterward.
func (e *Editor) Free() error {
	e.alloc.DisposeAll()
	e.store.Close()
	var err error
	if e.original != nil {
		err = e.original.Close()
	}
	e.begin, e.end = nil, nil
	return err
}
