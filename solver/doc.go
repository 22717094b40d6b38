// Package solver exhaustively enumerates every way a fixed list of pieces
// can be packed, without overlap, onto a board, and selects the packings
// that preserve the highest residual score.
//
// What:
//
//   - Solve expands each input piece into its orientation orbit (in input
//     order), then runs a depth-first backtracking search: the first piece
//     tries every orientation at every legal anchor, and each resulting
//     board recurses on the remaining pieces. A branch with no legal
//     placement simply contributes nothing; there are no error paths inside
//     the search.
//   - Result carries the untouched start board, the per-piece orientation
//     sets, every complete configuration discovered (or, in best-only mode,
//     just the leaders), the total configuration count, plus HighestScore
//     and Best selectors.
//
// Why:
//
//   - The objective is deliberately residual: a packing is as good as the
//     score of the cells it leaves uncovered, so Best rewards packings that
//     dodge high-value cells. Callers wanting "cover the most value" should
//     negate their inputs rather than expect the solver to flip its rule.
//   - Copy-on-write boards mean sibling branches share nothing mutable,
//     which is what lets Options.Workers fan the top-level branches across
//     goroutines with no locking beyond a final merge.
//
// Modes:
//
//   - Options.Workers: ≤1 runs the plain sequential recursion; N>1 splits
//     the first piece's orientation×anchor branches across N goroutines.
//     The discovered set is identical either way, merged in branch order.
//   - Options.BestOnly: streams the maximum-score reduction instead of
//     materializing every configuration. Count, HighestScore and Best are
//     unchanged; only the full Solutions list is traded for memory.
//
// Complexity:
//
//   - Worst case exponential in the number of pieces (exhaustive search,
//     pruned only by overlap rejection). Depth equals the piece count;
//     each node costs one placement scan over the board.
//
// Errors:
//
//   - ErrNoPieces: Solve called with an empty piece list.
package solver
