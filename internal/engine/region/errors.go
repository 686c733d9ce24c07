package region

import "errors"

// Errors returned by region operations.
var (
	// ErrNotRegular indicates the load target is not a regular file.
	ErrNotRegular = errors.New("region: not a regular file")

	// ErrIO wraps an underlying open/stat/mmap/munmap failure.
	ErrIO = errors.New("region: io error")

	// ErrOutOfMemory indicates a buffer or mapping could not be allocated.
	ErrOutOfMemory = errors.New("region: out of memory")
)
