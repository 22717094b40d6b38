// Package board models the packing target: a bounded rectangular grid whose
// cells are permanently blocked, free with an attached score, or occupied by
// a placed piece.
//
// What:
//
//   - Board wraps a Width×Height row-major grid of Cell. It is never
//     mutated in place: every placement yields an independent copy, so the
//     starting board survives the whole search untouched.
//   - Placements returns a restartable, finite iterator over every legal
//     axis-aligned placement of one piece orientation: each anchor where all
//     covered cells are Free produces a copy with those cells Occupied.
//   - Score sums the scores of cells still Free — the residual score the
//     solver maximizes.
//
// Why:
//
//   - Copy-on-write placement removes all aliasing between branches of a
//     backtracking search, which is what later makes fanning branches out
//     across workers safe without locks.
//   - A lazy placement iterator keeps peak memory bounded by search depth
//     rather than by the total number of placements.
//
// Complexity:
//
//   - Placements.Next: O(W×H×pw×ph) worst case across the whole scan; each
//     accepted anchor costs one O(W×H) copy.
//   - Score: O(W×H).
//
// Errors:
//
//   - ErrEmptyBoard: width or height is not positive.
//   - ErrCellCount: cell slice length differs from width×height.
//
// Anchors are scanned row-major (x innermost); a piece wider or taller than
// the board yields an immediately exhausted iterator, never an error.
package board
