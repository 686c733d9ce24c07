package region

import (
	"bytes"
	"testing"
)

func TestStorePutEmpty(t *testing.T) {
	s := NewStore(16)
	ref, err := s.Put(nil)
	if err != nil || ref != nil {
		t.Fatalf("Put(nil) = %v, %v; want nil, nil", ref, err)
	}
}

func TestStorePutWithinCapacity(t *testing.T) {
	s := NewStore(16)

	a, err := s.Put([]byte("hello"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	b, err := s.Put([]byte(" world"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if !bytes.Equal(a, []byte("hello")) || !bytes.Equal(b, []byte(" world")) {
		t.Fatalf("got %q, %q", a, b)
	}

	// Both came from the same underlying buffer: a must not have been
	// invalidated by b's append.
	if !bytes.Equal(a, []byte("hello")) {
		t.Fatalf("a mutated by later Put: %q", a)
	}
}

func TestStorePutGrowsNewBuffer(t *testing.T) {
	s := NewStore(4)

	first, err := s.Put([]byte("abcd"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	second, err := s.Put([]byte("ef"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if !bytes.Equal(first, []byte("abcd")) || !bytes.Equal(second, []byte("ef")) {
		t.Fatalf("got %q, %q", first, second)
	}

	// first's buffer is full; second must have landed in a fresh one but
	// first's slice must still read back correctly.
	if !bytes.Equal(first, []byte("abcd")) {
		t.Fatalf("first corrupted after growth: %q", first)
	}
}

func TestStorePutOversizedAllocatesExactFit(t *testing.T) {
	s := NewStore(4)
	big := bytes.Repeat([]byte("x"), 100)

	ref, err := s.Put(big)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !bytes.Equal(ref, big) {
		t.Fatalf("oversized put corrupted")
	}
}

func TestStoreCloseDoesNotInvalidateLiveSlices(t *testing.T) {
	s := NewStore(16)
	ref, err := s.Put([]byte("keepme"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.Close()
	if !bytes.Equal(ref, []byte("keepme")) {
		t.Fatalf("slice invalidated by Close: %q", ref)
	}
}
