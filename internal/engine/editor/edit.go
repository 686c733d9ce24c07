package editor

import (
	"fmt"

	"github.com/lumenedit/pted/internal/engine/piece"
)

// Insert copies data into the insertion buffer store and splices a new
// piece referencing it into the logical sequence at pos, recording one
// Change. pos must be in [0, Size()]. A zero-length data succeeds
// without recording a Change.
func (e *Editor) Insert(pos int, data []byte) error {
	if pos < 0 || pos > e.size {
		return ErrOutOfBounds
	}
	if len(data) == 0 {
		return nil
	}

	stored, err := e.store.Put(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	if e.size == 0 {
		p := e.alloc.New(stored)
		p.SetPrev(e.begin)
		p.SetNext(e.end)
		e.applySwap(piece.Span{}, piece.Single(p))
		return nil
	}

	loc := piece.Locate(e.begin, e.end, pos)

	switch {
	case loc.Offset == 0:
		// Insert before loc.Piece — covers both pos == 0 and the (never
		// produced, but handled for robustness) case of a boundary
		// reported against the later piece.
		p := e.alloc.New(stored)
		p.SetPrev(loc.Piece.Prev())
		p.SetNext(loc.Piece)
		e.applySwap(piece.Span{}, piece.Single(p))

	case loc.Offset == loc.Piece.Len():
		// Insert after loc.Piece — the convention Locate's tie-break
		// relies on: an interior boundary resolves to the earlier piece
		// with offset == its length.
		p := e.alloc.New(stored)
		p.SetPrev(loc.Piece)
		p.SetNext(loc.Piece.Next())
		e.applySwap(piece.Span{}, piece.Single(p))

	default:
		// Mid-piece split: before | middle(new) | after.
		split := loc.Piece
		bytes := split.Bytes()

		before := e.alloc.New(bytes[:loc.Offset])
		middle := e.alloc.New(stored)
		after := e.alloc.New(bytes[loc.Offset:])

		before.SetPrev(split.Prev())
		before.SetNext(middle)
		middle.SetPrev(before)
		middle.SetNext(after)
		after.SetPrev(middle)
		after.SetNext(split.Next())

		oldSpan := piece.Single(split)
		newSpan := piece.Span{
			Start: before,
			End:   after,
			Len:   before.Len() + middle.Len() + after.Len(),
		}
		e.applySwap(oldSpan, newSpan)
	}

	return nil
}

// Delete removes the len bytes starting at pos, recording one Change. A
// zero length succeeds without recording a Change. Returns
// ErrOutOfBounds if pos+length exceeds Size().
func (e *Editor) Delete(pos, length int) error {
	if length == 0 {
		return nil
	}
	if pos < 0 || length < 0 || pos+length > e.size {
		return ErrOutOfBounds
	}

	loc := piece.Locate(e.begin, e.end, pos)

	startPiece := loc.Piece
	startOffset := loc.Offset
	if startOffset == startPiece.Len() {
		// loc resolved to the earlier piece at an interior boundary;
		// the deletion actually begins at the start of the next piece,
		// cleanly, with no head-split.
		startPiece = startPiece.Next()
		startOffset = 0
	}

	var beforeBytes []byte
	if startOffset > 0 {
		beforeBytes = startPiece.Bytes()[:startOffset]
	}

	endPiece := startPiece
	oldLen := startPiece.Len()
	avail := startPiece.Len() - startOffset
	remaining := length - avail

	var endLocalOffset int
	if remaining <= 0 {
		endLocalOffset = startOffset + length
	} else {
		for remaining > 0 {
			endPiece = endPiece.Next()
			oldLen += endPiece.Len()
			if endPiece.Len() >= remaining {
				endLocalOffset = remaining
				remaining = 0
			} else {
				remaining -= endPiece.Len()
			}
		}
	}

	var afterBytes []byte
	if endLocalOffset < endPiece.Len() {
		afterBytes = endPiece.Bytes()[endLocalOffset:]
	}

	oldSpan := piece.Span{Start: startPiece, End: endPiece, Len: oldLen}

	prevLink := startPiece.Prev()
	nextLink := endPiece.Next()

	var newStart, newEnd *piece.Piece
	var newLen int

	switch {
	case len(beforeBytes) > 0 && len(afterBytes) > 0:
		before := e.alloc.New(beforeBytes)
		after := e.alloc.New(afterBytes)
		before.SetPrev(prevLink)
		before.SetNext(after)
		after.SetPrev(before)
		after.SetNext(nextLink)
		newStart, newEnd = before, after
		newLen = before.Len() + after.Len()

	case len(beforeBytes) > 0:
		before := e.alloc.New(beforeBytes)
		before.SetPrev(prevLink)
		before.SetNext(nextLink)
		newStart, newEnd = before, before
		newLen = before.Len()

	case len(afterBytes) > 0:
		after := e.alloc.New(afterBytes)
		after.SetPrev(prevLink)
		after.SetNext(nextLink)
		newStart, newEnd = after, after
		newLen = after.Len()
	}

	newSpan := piece.Span{Start: newStart, End: newEnd, Len: newLen}
	e.applySwap(oldSpan, newSpan)
	return nil
}

// Replace is delete(pos, len(data)) followed by insert(pos, data),
// recorded as two Changes within the same Action — a single Undo
// restores the overwritten bytes and removes the inserted ones.
func (e *Editor) Replace(pos int, data []byte) error {
	if err := e.Delete(pos, len(data)); err != nil {
		return err
	}
	return e.Insert(pos, data)
}
