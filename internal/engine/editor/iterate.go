package editor

import "github.com/lumenedit/pted/internal/engine/piece"

// Iterate invokes sink once per piece, starting mid-piece at the piece
// containing pos, until sink returns false or the document is
// exhausted. No allocation and no copy: each call receives a slice into
// editor-owned storage that must not be retained or mutated past the
// call. Returns ErrOutOfBounds if pos is outside [0, Size()].
func (e *Editor) Iterate(pos int, sink func(pos int, data []byte) bool) error {
	if pos < 0 || pos > e.size {
		return ErrOutOfBounds
	}
	if e.size == 0 {
		return nil
	}

	loc := piece.Locate(e.begin, e.end, pos)
	p := loc.Piece
	offset := loc.Offset
	cur := pos

	for p != e.end {
		chunk := p.Bytes()[offset:]
		if len(chunk) > 0 {
			if !sink(cur, chunk) {
				return nil
			}
			cur += len(chunk)
		}
		p = p.Next()
		offset = 0
	}

	return nil
}
