package piece

import "testing"

func TestLocateStartOfDocument(t *testing.T) {
	a := NewAllocator()
	p0 := a.New([]byte("abc"))
	p1 := a.New([]byte("def"))
	begin, end := link(p0, p1)

	loc := Locate(begin, end, 0)
	if loc.Piece != p0 || loc.Offset != 0 {
		t.Fatalf("Locate(0) = {%v, %d}, want {p0, 0}", loc.Piece.Bytes(), loc.Offset)
	}
}

func TestLocateEndOfDocument(t *testing.T) {
	a := NewAllocator()
	p0 := a.New([]byte("abc"))
	p1 := a.New([]byte("def"))
	begin, end := link(p0, p1)

	loc := Locate(begin, end, 6)
	if loc.Piece != p1 || loc.Offset != 3 {
		t.Fatalf("Locate(6) = {%v, %d}, want {p1, 3}", loc.Piece.Bytes(), loc.Offset)
	}
}

func TestLocateInteriorBoundaryResolvesToEarlierPiece(t *testing.T) {
	a := NewAllocator()
	p0 := a.New([]byte("abc"))
	p1 := a.New([]byte("def"))
	begin, end := link(p0, p1)

	loc := Locate(begin, end, 3)
	if loc.Piece != p0 || loc.Offset != p0.Len() {
		t.Fatalf("Locate(3) = {%v, %d}, want {p0, 3}", loc.Piece.Bytes(), loc.Offset)
	}
}

func TestLocateMidPiece(t *testing.T) {
	a := NewAllocator()
	p0 := a.New([]byte("abcdef"))
	begin, end := link(p0)

	loc := Locate(begin, end, 4)
	if loc.Piece != p0 || loc.Offset != 4 {
		t.Fatalf("Locate(4) = {%v, %d}, want {p0, 4}", loc.Piece.Bytes(), loc.Offset)
	}
}

func TestLocateSinglePieceWholeDocument(t *testing.T) {
	a := NewAllocator()
	p0 := a.New([]byte("x"))
	begin, end := link(p0)

	loc := Locate(begin, end, 1)
	if loc.Piece != p0 || loc.Offset != 1 {
		t.Fatalf("Locate(1) = {%v, %d}, want {p0, 1}", loc.Piece.Bytes(), loc.Offset)
	}
}
