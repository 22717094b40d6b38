// Package board defines the Cell and Board value types plus sentinel errors
// for the board subpackage of github.com/katalvlaran/gridpack.
package board

import (
	"errors"
	"strings"
)

// Sentinel errors for board construction.
var (
	// ErrEmptyBoard indicates a non-positive width or height.
	ErrEmptyBoard = errors.New("board: width and height must be positive")
	// ErrCellCount indicates the cell slice does not cover width×height.
	ErrCellCount = errors.New("board: cell slice length must equal width*height")
)

// State is the tag of a board cell.
type State uint8

const (
	// Blocked cells can never be covered and contribute no score.
	Blocked State = iota
	// Free cells may be covered by a piece and carry a fixed score.
	Free
	// Occupied cells are covered by the piece identified by Cell.PieceID.
	Occupied
)

// Cell is one board cell. Score is meaningful while State is Free (it is
// assigned at construction and never changes); PieceID is meaningful once
// State is Occupied. The only transition a cell ever makes is Free→Occupied,
// and only inside the copy produced by a placement.
type Cell struct {
	State   State
	Score   uint8
	PieceID uint8
}

// Board is a Width×Height grid of cells, stored row-major:
// index(x,y) = y*Width + x. Boards are treated as values; use Clone (or a
// placement) to obtain an independent copy.
type Board struct {
	Width, Height int

	cells []Cell
}

// New constructs a Board from a row-major cell slice.
// The slice is copied, so the caller may reuse its backing array.
// Returns ErrEmptyBoard if width or height is not positive,
// ErrCellCount if len(cells) != width*height.
// Complexity: O(W×H) time and memory.
func New(width, height int, cells []Cell) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, ErrEmptyBoard
	}
	if len(cells) != width*height {
		return Board{}, ErrCellCount
	}
	own := make([]Cell, len(cells))
	copy(own, cells)

	return Board{Width: width, Height: height, cells: own}, nil
}

// Clone returns a deep copy sharing no memory with the receiver.
// Complexity: O(W×H).
func (b Board) Clone() Board {
	own := make([]Cell, len(b.cells))
	copy(own, b.cells)

	return Board{Width: b.Width, Height: b.Height, cells: own}
}

// CellAt returns the cell at (x,y). Callers must keep 0 ≤ x < Width and
// 0 ≤ y < Height; out-of-range access panics like any slice access.
// Complexity: O(1).
func (b Board) CellAt(x, y int) Cell {
	return b.cells[y*b.Width+x]
}

// Score returns the residual score: the sum of Score over every cell still
// Free. Blocked and Occupied cells contribute nothing, so placing a piece
// never increases the result. Complexity: O(W×H).
func (b Board) Score() int {
	total := 0
	for _, c := range b.cells {
		if c.State == Free {
			total += int(c.Score)
		}
	}

	return total
}

// String renders the board row by row: Blocked→' ', Free with score 0→'-',
// Free with score n→the digit n, Occupied→the letter 'A'+PieceID.
// Rows are newline-separated with no trailing newline.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.Height)
	for i, c := range b.cells {
		if i != 0 && i%b.Width == 0 {
			sb.WriteByte('\n')
		}
		switch {
		case c.State == Blocked:
			sb.WriteByte(' ')
		case c.State == Occupied:
			sb.WriteByte('A' + c.PieceID)
		case c.Score == 0:
			sb.WriteByte('-')
		default:
			sb.WriteByte('0' + c.Score)
		}
	}

	return sb.String()
}
