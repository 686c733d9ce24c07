package history

import (
	"errors"
	"time"

	"github.com/lumenedit/pted/internal/engine/piece"
)

// Errors returned by history operations.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("history: nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// Stack holds the undo and redo Action stacks for one Editor, plus the
// pointer to the currently-open Action that new Changes append to.
//
// Stack is not safe for concurrent use; callers serialize access the way
// the rest of the piece table does (see package editor).
type Stack struct {
	undo    []*Action
	redo    []*Action
	current *Action

	alloc *piece.Allocator
}

// NewStack creates an empty history. alloc is used only to reclaim the
// pieces a truncated redo stack no longer needs (§4.8 redo truncation);
// it may be nil in tests that don't care about reclamation.
func NewStack(alloc *piece.Allocator) *Stack {
	return &Stack{alloc: alloc}
}

// Record appends a Change to the currently-open Action, opening a fresh
// one (and truncating the redo stack) if none is open.
func (s *Stack) Record(c Change) {
	if s.current == nil {
		s.truncateRedo()
		s.current = &Action{timestamp: time.Now()}
		s.undo = append(s.undo, s.current)
	}
	s.current.changes = append(s.current.changes, c)
}

// Snapshot closes the currently-open Action. The next Record call opens
// a fresh Action. Snapshot does not copy or move any data.
func (s *Stack) Snapshot() {
	s.current = nil
}

// truncateRedo discards every Action on the redo stack, freeing the new
// side of each of its Changes — the pieces that change introduced and
// that are now unreachable from the logical sequence. The old side is
// left alone: it may still be referenced by an Action earlier in the
// undo stack.
func (s *Stack) truncateRedo() {
	for _, a := range s.redo {
		for _, c := range a.changes {
			s.freeSpan(c.New)
		}
	}
	s.redo = nil
}

func (s *Stack) freeSpan(sp piece.Span) {
	if s.alloc == nil || sp.IsEmpty() {
		return
	}
	for p := sp.Start; p != nil; {
		next := p.Next()
		s.alloc.Dispose(p)
		if p == sp.End {
			break
		}
		p = next
	}
}

// Undo pops the topmost Action from the undo stack, reverses every
// Change it recorded (newest Change first, so overlapping edits undo in
// the order that reconstructs each intermediate state), and pushes the
// Action onto the redo stack. Returns ErrNothingToUndo if the undo stack
// is empty.
func (s *Stack) Undo() (*Action, error) {
	if len(s.undo) == 0 {
		return nil, ErrNothingToUndo
	}

	a := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	for i := len(a.changes) - 1; i >= 0; i-- {
		c := a.changes[i]
		piece.Swap(c.New, c.Old)
	}

	if s.current == a {
		s.current = nil
	}
	s.redo = append(s.redo, a)
	return a, nil
}

// Redo pops the topmost Action from the redo stack, reapplies every
// Change it recorded (oldest Change first, the original chronological
// order), and pushes the Action back onto the undo stack. Returns
// ErrNothingToRedo if the redo stack is empty.
func (s *Stack) Redo() (*Action, error) {
	if len(s.redo) == 0 {
		return nil, ErrNothingToRedo
	}

	a := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]

	for _, c := range a.changes {
		piece.Swap(c.Old, c.New)
	}

	s.undo = append(s.undo, a)
	return a, nil
}

// TopUndo returns the Action currently at the top of the undo stack,
// without popping it, and whether one exists. Used by modified? and by
// Save to record the high-water mark of "already on disk".
func (s *Stack) TopUndo() (*Action, bool) {
	if len(s.undo) == 0 {
		return nil, false
	}
	return s.undo[len(s.undo)-1], true
}

// CanUndo reports whether Undo would succeed.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }
