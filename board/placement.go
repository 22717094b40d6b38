package board

import "github.com/katalvlaran/gridpack/piece"

// PlacementIter walks every legal placement of one piece orientation on one
// board. It is finite and restartable only by calling Placements again; the
// underlying board is never modified.
type PlacementIter struct {
	board Board
	piece piece.Piece
	x, y  int
}

// Placements returns an iterator over every anchor (x,y) with
// 0 ≤ x ≤ Width−pw and 0 ≤ y ≤ Height−ph, scanned row-major (x innermost),
// at which p fits without touching a Blocked or Occupied cell. Each accepted
// anchor yields an independent copy of the board with the covered cells
// transitioned to Occupied by p.ID.
//
// A piece wider or taller than the board yields an exhausted iterator.
// Complexity: O(W×H×pw×ph) across a full scan plus O(W×H) per accepted anchor.
func (b Board) Placements(p piece.Piece) *PlacementIter {
	return &PlacementIter{board: b, piece: p}
}

// Next returns the next placement, or ok=false once all anchors are spent.
func (it *PlacementIter) Next() (Board, bool) {
	maxX := it.board.Width - it.piece.Width
	maxY := it.board.Height - it.piece.Height
	if maxX < 0 {
		return Board{}, false
	}
	for it.y <= maxY {
		x, y := it.x, it.y
		it.x++
		if it.x > maxX {
			it.x = 0
			it.y++
		}
		if it.board.fits(it.piece, x, y) {
			return it.board.stamped(it.piece, x, y), true
		}
	}

	return Board{}, false
}

// PlaceAll materializes every placement of p on b, in iterator order.
// Convenience for callers that want the full set rather than lazy traversal.
func (b Board) PlaceAll(p piece.Piece) []Board {
	var out []Board
	it := b.Placements(p)
	for placed, ok := it.Next(); ok; placed, ok = it.Next() {
		out = append(out, placed)
	}

	return out
}

// fits reports whether every Occupied cell of p lands on a Free board cell
// when anchored at (x,y). Bounds are the caller's responsibility.
func (b Board) fits(p piece.Piece, x, y int) bool {
	for py := 0; py < p.Height; py++ {
		row := (y + py) * b.Width
		for px := 0; px < p.Width; px++ {
			if p.CellAt(px, py) != piece.Occupied {
				continue
			}
			if b.cells[row+x+px].State != Free {
				return false
			}
		}
	}

	return true
}

// stamped returns a copy of b with p's Occupied cells placed at (x,y).
// Callers must have verified the anchor with fits.
func (b Board) stamped(p piece.Piece, x, y int) Board {
	out := b.Clone()
	for py := 0; py < p.Height; py++ {
		row := (y + py) * b.Width
		for px := 0; px < p.Width; px++ {
			if p.CellAt(px, py) == piece.Occupied {
				out.cells[row+x+px] = Cell{State: Occupied, PieceID: p.ID}
			}
		}
	}

	return out
}
