package session

import (
	"path/filepath"
	"testing"
	"time"
)

func TestOpenMissingLedgerIsEmpty(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(filepath.Join(dir, "missing.json"), 10)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(l.Entries()) != 0 {
		t.Fatalf("Entries() = %v, want empty", l.Entries())
	}
}

func TestTouchAddsAndOrdersMostRecentFirst(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(filepath.Join(dir, "session.json"), 10)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := l.Touch(filepath.Join(dir, "a.txt"), 10, base); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if err := l.Touch(filepath.Join(dir, "b.txt"), 20, base.Add(time.Hour)); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if filepath.Base(entries[0].Path) != "b.txt" {
		t.Fatalf("entries[0].Path = %q, want b.txt most recent first", entries[0].Path)
	}
}

func TestTouchReplacesExistingEntryForSamePath(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(filepath.Join(dir, "session.json"), 10)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	path := filepath.Join(dir, "a.txt")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	must(t, l.Touch(path, 10, base))
	must(t, l.Touch(path, 99, base.Add(time.Minute)))

	entries := l.Entries()
	if len(entries) != 1 {
		t.Fatalf("len(Entries()) = %d, want 1 (replaced, not duplicated)", len(entries))
	}
	if entries[0].Size != 99 {
		t.Fatalf("Size = %d, want 99", entries[0].Size)
	}
}

func TestTouchTrimsToMaxFiles(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(filepath.Join(dir, "session.json"), 2)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	must(t, l.Touch(filepath.Join(dir, "a.txt"), 1, base))
	must(t, l.Touch(filepath.Join(dir, "b.txt"), 1, base.Add(time.Minute)))
	must(t, l.Touch(filepath.Join(dir, "c.txt"), 1, base.Add(2*time.Minute)))

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if filepath.Base(entries[0].Path) != "c.txt" || filepath.Base(entries[1].Path) != "b.txt" {
		t.Fatalf("entries = %v, want [c.txt, b.txt]", entries)
	}
}

func TestSaveAndReopenRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "session.json")

	l, err := Open(path, 10)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	must(t, l.Touch(filepath.Join(dir, "a.txt"), 42, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err := l.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := Open(path, 10)
	if err != nil {
		t.Fatalf("Open (reopen): %v", err)
	}
	entries := reopened.Entries()
	if len(entries) != 1 || entries[0].Size != 42 {
		t.Fatalf("entries = %v, want one entry with size 42", entries)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
