// Package piece implements the piece table's logical sequence: immutable
// Piece descriptors linked into a doubly-linked chain between two
// sentinel nodes, the Span selection over a contiguous run of pieces, and
// Swap, the sole primitive that mutates the sequence.
//
// Every piece is allocated through an Allocator, which also threads an
// allocation-order list used only for bulk cleanup and for reclaiming the
// pieces a truncated redo stack no longer needs. Pieces are never freed
// in response to an edit — only discarded history or editor disposal
// drops them — which is what lets undo re-link old pieces without
// recomputation.
package piece
