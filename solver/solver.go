// Package solver - exhaustive backtracking over piece orientation orbits.
//
// The search mirrors the shape of the data: Variants[i] is the orientation
// set of piece i, and the recursion consumes Variants front to back, one
// piece per level. Placement enumeration (board.Placements) is the only
// pruning; a rejected anchor never recurses.
package solver

import (
	"sync"

	"github.com/katalvlaran/gridpack/board"
	"github.com/katalvlaran/gridpack/piece"
)

// Solve packs every piece exactly once onto start and returns the full set
// of complete configurations. Pieces are processed strictly in input order;
// orientation order follows piece.AllVariants and anchor order is row-major.
//
// Returns ErrNoPieces if pieces is empty. The input board is never
// modified; Result.Start is an independent snapshot.
//
// Complexity: exponential in len(pieces) in the worst case; each search
// node costs one placement scan of the board.
func Solve(start board.Board, pieces []piece.Piece, opts Options) (*Result, error) {
	if len(pieces) == 0 {
		return nil, ErrNoPieces
	}

	variants := make([][]piece.Piece, len(pieces))
	for i, p := range pieces {
		variants[i] = p.AllVariants()
	}

	var acc *accumulator
	if opts.Workers > 1 {
		acc = solveParallel(start, variants, opts)
	} else {
		acc = newAccumulator(opts.BestOnly)
		solve(start, variants, acc)
	}

	return &Result{
		Start:     start.Clone(),
		Variants:  variants,
		Solutions: acc.boards,
		Count:     acc.count,
	}, nil
}

// solve recurses depth-first: the head of remaining supplies the current
// piece's orientation candidates, the tail is handed to the next level.
// Exhausting the placement iterator is the implicit backtrack.
func solve(state board.Board, remaining [][]piece.Piece, acc *accumulator) {
	top, rest := remaining[0], remaining[1:]

	for _, orient := range top {
		it := state.Placements(orient)
		for placed, ok := it.Next(); ok; placed, ok = it.Next() {
			if len(rest) == 0 {
				acc.add(placed)
			} else {
				solve(placed, rest, acc)
			}
		}
	}
}

// solveParallel fans the first piece's orientation×anchor branches across
// opts.Workers goroutines. Every branch owns its board copies, so workers
// share nothing mutable; per-branch accumulators are merged in branch order
// afterwards, which keeps the discovered set identical to a sequential run.
func solveParallel(start board.Board, variants [][]piece.Piece, opts Options) *accumulator {
	top, rest := variants[0], variants[1:]

	// Materialize the top-level branches up front so they can be indexed.
	var branches []board.Board
	for _, orient := range top {
		it := start.Placements(orient)
		for placed, ok := it.Next(); ok; placed, ok = it.Next() {
			branches = append(branches, placed)
		}
	}

	accs := make([]*accumulator, len(branches))
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(branches); i += opts.Workers {
				acc := newAccumulator(opts.BestOnly)
				if len(rest) == 0 {
					acc.add(branches[i])
				} else {
					solve(branches[i], rest, acc)
				}
				accs[i] = acc
			}
		}(w)
	}
	wg.Wait()

	merged := newAccumulator(opts.BestOnly)
	for _, acc := range accs {
		merged.merge(acc)
	}

	return merged
}

// accumulator collects complete configurations. In best-only mode it keeps
// just the running score leaders plus the total count.
type accumulator struct {
	bestOnly bool
	count    int
	best     int
	boards   []board.Board
}

func newAccumulator(bestOnly bool) *accumulator {
	return &accumulator{bestOnly: bestOnly}
}

// add records one complete configuration.
func (a *accumulator) add(b board.Board) {
	a.count++
	if !a.bestOnly {
		a.boards = append(a.boards, b)
		return
	}
	score := b.Score()
	switch {
	case len(a.boards) == 0 || score > a.best:
		a.best = score
		a.boards = append(a.boards[:0], b)
	case score == a.best:
		a.boards = append(a.boards, b)
	}
}

// merge folds another accumulator in, preserving its discovery order.
func (a *accumulator) merge(other *accumulator) {
	a.count += other.count
	if !a.bestOnly {
		a.boards = append(a.boards, other.boards...)
		return
	}
	if len(other.boards) == 0 {
		return
	}
	switch {
	case len(a.boards) == 0 || other.best > a.best:
		a.best = other.best
		a.boards = append(a.boards[:0], other.boards...)
	case other.best == a.best:
		a.boards = append(a.boards, other.boards...)
	}
}
