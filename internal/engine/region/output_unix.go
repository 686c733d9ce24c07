//go:build unix

package region

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OutputRegion is the writable memory-mapped view of a save-time
// temporary file. CreateOutput truncates the file to exactly size bytes
// before mapping it, so Bytes() always has len == size.
type OutputRegion struct {
	f      *os.File
	data   []byte
	mapped bool
}

// CreateOutput creates (or truncates) path with the given mode, sizes it
// to size bytes, and maps it read-write and shared so writes are visible
// to the file immediately. A zero size yields an unmapped, zero-length
// region; the file is still created and truncated to empty.
func CreateOutput(path string, mode os.FileMode, size int) (*OutputRegion, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}

	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("%w: truncate %s: %v", ErrIO, path, err)
	}

	if size == 0 {
		return &OutputRegion{f: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("%w: mmap %s: %v", ErrIO, path, err)
	}

	return &OutputRegion{f: f, data: data, mapped: true}, nil
}

// Bytes returns the writable mapping.
func (r *OutputRegion) Bytes() []byte { return r.data }

// Close unmaps and closes the underlying file. It does not remove the
// file; the caller renames it into place on success or removes it on
// failure.
func (r *OutputRegion) Close() error {
	var err error
	if r.mapped {
		err = unix.Munmap(r.data)
		r.mapped = false
		r.data = nil
	}
	if cerr := r.f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w: close output: %v", ErrIO, err)
	}
	return nil
}
