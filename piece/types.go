// Package piece defines the Cell and Piece value types plus sentinel errors
// for the piece subpackage of github.com/katalvlaran/gridpack.
package piece

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for piece construction.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("piece: width and height must be positive")
	// ErrCellCount indicates the cell slice does not cover width×height.
	ErrCellCount = errors.New("piece: cell slice length must equal width*height")
)

// Cell is the occupancy state of a single piece cell.
type Cell uint8

const (
	// Free marks a cell inside the bounding box that the piece does not cover.
	Free Cell = iota
	// Occupied marks a cell the piece covers.
	Occupied
)

// Piece is an immutable Width×Height occupancy bitmap with an identity tag.
// Cells are stored row-major: index(x,y) = y*Width + x. All transformations
// return new Piece values; a Piece never changes after construction.
type Piece struct {
	// ID tags board cells once the piece is placed. Assigned sequentially
	// (0, 1, 2, …) by the loader in input order.
	ID uint8
	// Width and Height define the bounding box. A transpose swaps them.
	Width, Height int

	cells []Cell
}

// New constructs a Piece from a row-major cell slice.
// The slice is copied, so the caller may reuse its backing array.
// Returns ErrBadDimensions if width or height is not positive,
// ErrCellCount if len(cells) != width*height.
// Complexity: O(W×H) time and memory.
func New(id uint8, width, height int, cells []Cell) (Piece, error) {
	if width <= 0 || height <= 0 {
		return Piece{}, ErrBadDimensions
	}
	if len(cells) != width*height {
		return Piece{}, ErrCellCount
	}
	own := make([]Cell, len(cells))
	copy(own, cells)

	return Piece{ID: id, Width: width, Height: height, cells: own}, nil
}

// CellAt returns the cell at (x,y). Callers must keep 0 ≤ x < Width and
// 0 ≤ y < Height; out-of-range access panics like any slice access.
// Complexity: O(1).
func (p Piece) CellAt(x, y int) Cell {
	return p.cells[y*p.Width+x]
}

// OccupiedCount returns the number of Occupied cells.
// Invariant: identical for every member of a piece's orientation orbit.
// Complexity: O(W×H).
func (p Piece) OccupiedCount() int {
	n := 0
	for _, c := range p.cells {
		if c == Occupied {
			n++
		}
	}

	return n
}

// Equal reports structural equality: same ID, dimensions and cell array.
// Complexity: O(W×H).
func (p Piece) Equal(q Piece) bool {
	if p.ID != q.ID || p.Width != q.Width || p.Height != q.Height {
		return false
	}
	for i := range p.cells {
		if p.cells[i] != q.cells[i] {
			return false
		}
	}

	return true
}

// Key returns a stable structural key over (ID, Width, Height, cells),
// suitable for map-based deduplication of the orientation orbit.
// Complexity: O(W×H).
func (p Piece) Key() string {
	var b strings.Builder
	b.Grow(len(p.cells) + 12)
	b.WriteString(strconv.Itoa(int(p.ID)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(p.Width))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(p.Height))
	b.WriteByte('|')
	for _, c := range p.cells {
		if c == Occupied {
			b.WriteByte('X')
		} else {
			b.WriteByte('.')
		}
	}

	return b.String()
}

// String renders the piece row by row: Occupied→'X', Free→' '.
// Rows are newline-separated with no trailing newline.
func (p Piece) String() string {
	var b strings.Builder
	b.Grow(len(p.cells) + p.Height)
	for i, c := range p.cells {
		if i != 0 && i%p.Width == 0 {
			b.WriteByte('\n')
		}
		if c == Occupied {
			b.WriteByte('X')
		} else {
			b.WriteByte(' ')
		}
	}

	return b.String()
}
