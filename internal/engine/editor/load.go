package editor

import (
	"github.com/lumenedit/pted/internal/engine/region"
)

// Load opens filename as the original region and constructs an Editor
// whose logical sequence starts as a single piece spanning the whole
// file. An empty filename yields an empty document with no backing
// file — equivalent to New. The original region is held open (and, on
// unix, memory-mapped) for the lifetime of the Editor; Free releases it.
func Load(filename string, opts ...Option) (*Editor, error) {
	e := New(opts...)

	if filename == "" {
		return e, nil
	}

	orig, err := region.OpenOriginal(filename)
	if err != nil {
		return nil, translateRegionErr(err)
	}
	e.original = orig
	e.filename = filename

	if orig.Len() == 0 {
		return e, nil
	}

	p := e.alloc.New(orig.Bytes())
	p.SetPrev(e.begin)
	p.SetNext(e.end)
	e.begin.SetNext(p)
	e.end.SetPrev(p)
	e.size = p.Len()

	// The initial piece is not a recorded edit: nothing to undo back
	// past the file as it was loaded.
	e.Snapshot()

	return e, nil
}
