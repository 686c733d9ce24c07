package editor

import "github.com/lumenedit/pted/internal/engine/region"

// Option is a functional option for configuring an Editor at
// construction time.
type Option func(*config)

type config struct {
	bufferCapacity int
}

func defaultConfig() config {
	return config{bufferCapacity: region.DefaultBufferCapacity}
}

// WithBufferCapacity sets the size of each insertion buffer the editor
// allocates. Tune this to the application's expected write rate; a
// single insertion larger than capacity still gets a buffer sized to
// fit it exactly (see region.Store).
func WithBufferCapacity(capacity int) Option {
	return func(c *config) {
		if capacity > 0 {
			c.bufferCapacity = capacity
		}
	}
}
