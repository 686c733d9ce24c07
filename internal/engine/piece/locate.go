package piece

// Location is a byte position in the document expressed as a piece and
// an offset into it.
type Location struct {
	Piece  *Piece
	Offset int
}

// Locate walks the logical sequence between the begin and end sentinels
// from head, accumulating a running byte count, and returns the first
// piece p for which cur <= pos <= cur+p.Len(). Ties at a piece boundary
// resolve to the earlier piece with Offset == p.Len() — both Insert and
// Delete depend on that convention to mean "append after p" — and a pos
// equal to the document size naturally resolves to the last data piece
// with Offset == its length, since that is the first (and only) piece
// satisfying the inequality at that position.
//
// Locate must not be called on an empty document (begin.Next() == end);
// callers handle that case directly, since there is no piece to locate
// into.
func Locate(begin, end *Piece, pos int) Location {
	cur := 0
	for p := begin.Next(); p != end; p = p.Next() {
		if pos <= cur+p.Len() {
			return Location{Piece: p, Offset: pos - cur}
		}
		cur += p.Len()
	}
	// Unreachable for a valid pos in [0, size] on a non-empty document;
	// fall back to end-of-document against the last data piece.
	return Location{Piece: end.Prev(), Offset: end.Prev().Len()}
}
