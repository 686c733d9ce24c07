package piece

import "testing"

func TestAllocatorNewLinksAndCounts(t *testing.T) {
	a := NewAllocator()
	if a.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", a.Count())
	}

	p1 := a.New([]byte("a"))
	p2 := a.New([]byte("bb"))

	if a.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", a.Count())
	}
	if p1.Len() != 1 || p2.Len() != 2 {
		t.Fatalf("unexpected lengths: %d, %d", p1.Len(), p2.Len())
	}
	if p1.Index() == p2.Index() {
		t.Fatalf("pieces share an index: %d", p1.Index())
	}
}

func TestAllocatorDisposeUnlinksOnlyThatPiece(t *testing.T) {
	a := NewAllocator()
	a.New([]byte("a"))
	p2 := a.New([]byte("b"))
	a.New([]byte("c"))

	a.Dispose(p2)

	if a.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", a.Count())
	}
}

func TestAllocatorDisposeAll(t *testing.T) {
	a := NewAllocator()
	a.New([]byte("a"))
	a.New([]byte("b"))

	a.DisposeAll()

	if a.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", a.Count())
	}
}

func TestSentinelIsEmpty(t *testing.T) {
	s := NewSentinel()
	if s.Len() != 0 {
		t.Fatalf("sentinel Len() = %d, want 0", s.Len())
	}
	if s.Bytes() != nil {
		t.Fatalf("sentinel Bytes() = %v, want nil", s.Bytes())
	}
}

func TestNilPieceIsSafeToQuery(t *testing.T) {
	var p *Piece
	if p.Len() != 0 {
		t.Fatalf("nil Piece.Len() = %d, want 0", p.Len())
	}
	if p.Bytes() != nil {
		t.Fatalf("nil Piece.Bytes() = %v, want nil", p.Bytes())
	}
}
