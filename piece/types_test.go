package piece_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpack/piece"
)

// cellsOf converts rows of 'X' (occupied) and '.' (free) into a cell slice.
func cellsOf(rows ...string) []piece.Cell {
	var out []piece.Cell
	for _, row := range rows {
		for _, r := range row {
			if r == 'X' {
				out = append(out, piece.Occupied)
			} else {
				out = append(out, piece.Free)
			}
		}
	}

	return out
}

// mustPiece builds a piece from equal-length rows or fails the test.
func mustPiece(t *testing.T, id uint8, rows ...string) piece.Piece {
	t.Helper()
	p, err := piece.New(id, len(rows[0]), len(rows), cellsOf(rows...))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	return p
}

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate shapes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		cells         []piece.Cell
		err           error
	}{
		{"ZeroWidth", 0, 1, nil, piece.ErrBadDimensions},
		{"ZeroHeight", 1, 0, nil, piece.ErrBadDimensions},
		{"NegativeWidth", -2, 1, nil, piece.ErrBadDimensions},
		{"ShortCells", 2, 2, cellsOf("XX"), piece.ErrCellCount},
		{"LongCells", 1, 1, cellsOf("XX"), piece.ErrCellCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := piece.New(7, tc.width, tc.height, tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.width, tc.height, err, tc.err)
			}
		})
	}
}

// TestNew_CopiesCells ensures the constructor does not alias caller memory.
func TestNew_CopiesCells(t *testing.T) {
	raw := cellsOf("X.")
	p, err := piece.New(0, 2, 1, raw)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	raw[0] = piece.Free
	if p.CellAt(0, 0) != piece.Occupied {
		t.Error("mutating the input slice changed the piece")
	}
}

// TestCellAt checks row-major addressing on a non-square piece.
func TestCellAt(t *testing.T) {
	p := mustPiece(t, 0,
		"X..",
		".XX",
	)
	occupied := [][2]int{{0, 0}, {1, 1}, {2, 1}}
	for _, xy := range occupied {
		if p.CellAt(xy[0], xy[1]) != piece.Occupied {
			t.Errorf("CellAt(%d,%d) = Free; want Occupied", xy[0], xy[1])
		}
	}
	free := [][2]int{{1, 0}, {2, 0}, {0, 1}}
	for _, xy := range free {
		if p.CellAt(xy[0], xy[1]) != piece.Free {
			t.Errorf("CellAt(%d,%d) = Occupied; want Free", xy[0], xy[1])
		}
	}
}

// TestEqualAndKey verifies structural equality and key agreement.
func TestEqualAndKey(t *testing.T) {
	a := mustPiece(t, 1, "XX", ".X")
	b := mustPiece(t, 1, "XX", ".X")
	c := mustPiece(t, 2, "XX", ".X") // same shape, different ID
	d := mustPiece(t, 1, "XX", "X.") // same ID, different shape

	if !a.Equal(b) {
		t.Error("identical pieces reported unequal")
	}
	if a.Key() != b.Key() {
		t.Error("identical pieces produced different keys")
	}
	if a.Equal(c) || a.Key() == c.Key() {
		t.Error("ID must participate in equality and key")
	}
	if a.Equal(d) || a.Key() == d.Key() {
		t.Error("cells must participate in equality and key")
	}
}

// TestOccupiedCount checks the cell tally on mixed shapes.
func TestOccupiedCount(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"Single", []string{"X"}, 1},
		{"LShape", []string{"X.", "X.", "XX"}, 4},
		{"AllFree", []string{"..", ".."}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPiece(t, 0, tc.rows...)
			if got := p.OccupiedCount(); got != tc.want {
				t.Errorf("OccupiedCount() = %d; want %d", got, tc.want)
			}
		})
	}
}

// TestString renders an L-tromino with spaces for free cells and no
// trailing newline.
func TestString(t *testing.T) {
	p := mustPiece(t, 0,
		"X.",
		"XX",
	)
	want := "X \nXX"
	if got := p.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
