// Package history implements the undo/redo half of the piece table: a
// Change records one span swap, an Action groups every Change performed
// since the last snapshot boundary, and Stack holds the two Action
// stacks plus the bookkeeping that keeps them reversible.
//
// A Change is its own inverse by construction (swapping New back for Old
// undoes it, and Old back for New redoes it); Stack never recomputes or
// re-derives a Change, it only ever replays the two Spans already
// recorded, newest first on undo and oldest first on redo.
package history
