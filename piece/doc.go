// Package piece models the rigid tiles of a packing puzzle as immutable
// rectangular occupancy bitmaps, and generates their full symmetry orbit.
//
// What:
//
//   - Piece wraps a Width×Height row-major grid of Cell (Occupied or Free)
//     plus a small numeric ID used to mark board cells once placed.
//   - FlippedHorizontally, FlippedVertically and Transposed each return a
//     new Piece; the receiver is never modified.
//   - AllVariants returns every distinct orientation reachable under the
//     dihedral group of the rectangle (at most 8, fewer for symmetric
//     shapes), deduplicated by structural equality.
//
// Why:
//
//   - Packing solvers must try every orientation of every tile exactly once;
//     deduplicating the orbit up front keeps the search tree minimal.
//   - Value semantics make orientations safe to share across search
//     branches and worker goroutines without copying or locking.
//
// Complexity:
//
//   - Each flip/transpose: O(W×H) time and memory.
//   - AllVariants: O(W×H) per candidate, 8 candidates, so O(W×H) overall.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrCellCount: cell slice length differs from width×height.
//
// Orbit order is not part of the contract: callers must not depend on the
// position of a particular orientation within AllVariants' result. The
// current implementation sorts by structural key so runs are reproducible.
package piece
