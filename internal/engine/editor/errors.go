package editor

import "errors"

// Errors returned by Editor operations: allocation failure, an
// out-of-bounds position or length, a failed filesystem call, and a
// load target that is not a regular file.
var (
	// ErrOutOfMemory indicates a piece, insertion buffer, Change or
	// Action could not be allocated.
	ErrOutOfMemory = errors.New("editor: out of memory")

	// ErrOutOfBounds indicates a delete or iterate past the end of the
	// document, or a negative position/length.
	ErrOutOfBounds = errors.New("editor: out of bounds")

	// ErrIO wraps an underlying open/stat/mmap/write/rename failure.
	ErrIO = errors.New("editor: io error")

	// ErrNotRegular indicates the load target is not a regular file.
	ErrNotRegular = errors.New("editor: not a regular file")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("editor: nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("editor: nothing to redo")
)
