// Package gridpack is an exhaustive enumerator for tile-packing puzzles:
// place a fixed set of rigid pieces, without overlap, on a bounded grid of
// blocked and scored cells, and find every full packing that preserves the
// highest residual score.
//
// 🚀 What is gridpack?
//
//	A small, deterministic library that brings together:
//		• piece/   — immutable piece bitmaps and their full symmetry orbit
//		  (flips and transpose, deduplicated by shape)
//		• board/   — the target grid, lazy placement enumeration and scoring
//		• solver/  — depth-first backtracking over all pieces, sequential or
//		  fanned out across workers, with an optional streaming best-only mode
//		• textio/  — the line-oriented text format for pieces and boards
//		• archive/ — persisted solve runs (zstd solution stream + manifest)
//
// ✨ Why choose gridpack?
//
//   - Exact – every legal complete configuration is enumerated, no heuristics
//   - Value semantics – placements never mutate their source board, so
//     branches of the search (and workers) never share mutable state
//   - Deterministic – identical inputs always produce the identical set of
//     configurations, regardless of worker count
//
// Quick ASCII example: the board
//
//	--2
//	-1-
//
// has two worthless free cells, one cell worth 1 and one worth 2. Packing it
// with pieces keeps the score of whatever stays uncovered.
//
// Dive into each package's doc.go for contracts, complexity and errors, and
// cmd/gridpack for the command-line front end.
//
//	go get github.com/katalvlaran/gridpack
package gridpack
