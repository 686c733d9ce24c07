package history

import (
	"time"

	"github.com/lumenedit/pted/internal/engine/piece"
)

// Change is one span swap remembered so it can be undone (by swapping
// New back out for Old) or redone (by swapping Old back out for New).
type Change struct {
	Old, New piece.Span
}

// Action is the unit of user-visible undo: every Change performed since
// the previous snapshot boundary, plus the time the Action was opened.
// Changes are recorded in chronological order; Undo replays them
// newest-first, Redo replays them oldest-first — see Stack.Undo/Redo.
type Action struct {
	changes   []Change
	timestamp time.Time
}

// Changes returns the Action's recorded changes in chronological order.
func (a *Action) Changes() []Change {
	if a == nil {
		return nil
	}
	return a.changes
}

// Timestamp returns when the Action was opened.
func (a *Action) Timestamp() time.Time {
	return a.timestamp
}

// IsEmpty reports whether the Action recorded no Changes.
func (a *Action) IsEmpty() bool {
	return a == nil || len(a.changes) == 0
}
