// Package editor is the façade over the piece table: Load, Save, Insert,
// Delete, Replace, Undo, Redo, Snapshot, Iterate, Modified and Free. It
// wires together internal/engine/region (the two storage backends),
// internal/engine/piece (the logical sequence and the span-swap
// primitive) and internal/engine/history (the undo/redo stacks) into the
// single type external callers interact with.
//
// Editor is not safe for concurrent use. The editor object carries no
// internal synchronization by design: a multi-threaded host is expected
// to serialize every call against a given Editor itself.
package editor
