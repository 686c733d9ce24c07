// Package region implements the two immutable byte-storage backends a
// piece table references: the read-only memory-mapped original file and
// the chain of append-only insertion buffers that absorb inserted bytes.
//
// Neither backend is ever rewritten. The original region is mapped once
// at load time and unmapped only when the editor is disposed. Insertion
// buffers only grow by appending; once a byte range has been handed out
// to a piece, that range is stable for the lifetime of the editor.
package region
