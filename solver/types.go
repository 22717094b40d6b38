// Package solver defines the Options and Result types plus sentinel errors
// for the solver subpackage of github.com/katalvlaran/gridpack.
package solver

import (
	"errors"

	"github.com/katalvlaran/gridpack/board"
	"github.com/katalvlaran/gridpack/piece"
)

// ErrNoPieces is returned when Solve is invoked without any piece: packing
// zero pieces is not a supported entry point.
var ErrNoPieces = errors.New("solver: at least one piece is required")

// Options contains tunable parameters for a solve run.
type Options struct {
	// Workers is the number of goroutines the top-level branches are fanned
	// across. Values ≤1 run the plain sequential depth-first search.
	Workers int
	// BestOnly streams the maximum-score reduction: Result.Solutions holds
	// only the configurations tied for the highest residual score, while
	// Result.Count still reports every configuration discovered.
	BestOnly bool
}

// DefaultOptions returns Options with default settings:
// Workers=1 (sequential), BestOnly=false (collect every configuration).
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Result is the read-only outcome of one solve run.
type Result struct {
	// Start is a snapshot of the board the search began from.
	Start board.Board
	// Variants holds one orientation set per input piece, in input order.
	// Set order within a piece follows piece.AllVariants.
	Variants [][]piece.Piece
	// Solutions lists the complete configurations: every one discovered in
	// collect-all mode, or only the score-leaders in best-only mode, both
	// in discovery order.
	Solutions []board.Board
	// Count is the total number of complete configurations discovered,
	// independent of mode.
	Count int
}

// HighestScore returns the maximum residual score over all complete
// configurations, or 0 if none exist. Complexity: O(len(Solutions)×W×H).
func (r *Result) HighestScore() int {
	best := 0
	for _, s := range r.Solutions {
		if score := s.Score(); score > best {
			best = score
		}
	}

	return best
}

// Best returns every complete configuration whose residual score equals
// HighestScore, in discovery order. Empty iff no configuration exists.
func (r *Result) Best() []board.Board {
	if len(r.Solutions) == 0 {
		return nil
	}
	best := r.HighestScore()
	out := make([]board.Board, 0, len(r.Solutions))
	for _, s := range r.Solutions {
		if s.Score() == best {
			out = append(out, s)
		}
	}

	return out
}
