//go:build !unix

package region

import (
	"fmt"
	"os"
)

// OriginalRegion is the read-only view of the file an editor was loaded
// from. On platforms without a POSIX mmap (golang.org/x/sys/unix is
// unix-only) the whole file is read into heap memory instead; the
// resulting slice offers the same immutability guarantee the piece table
// relies on, at the cost of the mapping's lazy paging.
type OriginalRegion struct {
	data []byte
}

// OpenOriginal opens path, rejects non-regular files, and reads the
// entire file into memory.
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

	data := make([]byte, info.Size())
	if _, err := f.ReadAt(data, 0); err != nil && len(data) > 0 {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}

	return &OriginalRegion{data: data}, nil
}

// Bytes returns the full region.
func (r *OriginalRegion) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.data
}

// Len returns the byte length of the region.
func (r *OriginalRegion) Len() int {
	if r == nil {
		return 0
	}
	return len(r.data)
}

// Close releases the region's memory.
func (r *OriginalRegion) Close() error {
	if r != nil {
		r.data = nil
	}
	return nil
}
