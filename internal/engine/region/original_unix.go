//go:build unix

package region

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OriginalRegion is the read-only memory-mapped view of the file an
// editor was loaded from. It is installed once at load time and never
// rewritten; every piece referencing it stays valid until Close.
type OriginalRegion struct {
	data   []byte
	mapped bool
}

// OpenOriginal opens path, rejects non-regular files, and maps the
// entire file read-only and shared. An empty file yields a zero-length,
// unmapped region (mmap of a zero-length file is not portable).
func OpenOriginal(path string) (*OriginalRegion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrIO, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	size := info.Size()
	if size == 0 {
		return &OriginalRegion{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %v", ErrIO, path, err)
	}

	return &OriginalRegion{data: data, mapped: true}, nil
}

// Bytes returns the full mapped region. The slice must not be retained
// past Close.
func (r *OriginalRegion) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.data
}

// Len returns the byte length of the mapped file.
func (r *OriginalRegion) Len() int {
	if r == nil {
		return 0
	}
	return len(r.data)
}

// Close unmaps the region. Safe to call on a nil or already-empty region.
func (r *OriginalRegion) Close() error {
	if r == nil || !r.mapped {
		return nil
	}
	err := unix.Munmap(r.data)
	r.mapped = false
	r.data = nil
	if err != nil {
		return fmt.Errorf("%w: munmap: %v", ErrIO, err)
	}
	return nil
}
