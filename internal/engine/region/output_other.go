//go:build !unix

package region

import (
	"fmt"
	"os"
)

// OutputRegion is the writable view of a save-time temporary file. On
// platforms without a POSIX mmap, writes accumulate in a heap buffer
// and are flushed to the file in Close.
type OutputRegion struct {
	f    *os.File
	data []byte
}

// CreateOutput creates (or truncates) path with the given mode and
// sizes its in-memory buffer to size bytes.
func CreateOutput(path string, mode os.FileMode, size int) (*OutputRegion, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}
	return &OutputRegion{f: f, data: make([]byte, size)}, nil
}

// Bytes returns the writable buffer.
func (r *OutputRegion) Bytes() []byte { return r.data }

// Close flushes the buffer to the file and closes it.
func (r *OutputRegion) Close() error {
	if _, err := r.f.WriteAt(r.data, 0); err != nil {
		r.f.Close()
		return fmt.Errorf("%w: write output: %v", ErrIO, err)
	}
	if err := r.f.Close(); err != nil {
		return fmt.Errorf("%w: close output: %v", ErrIO, err)
	}
	return nil
}
