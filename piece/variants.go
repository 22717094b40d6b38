package piece

import "sort"

// FlippedHorizontally returns a copy mirrored across the horizontal axis:
// the cell at row y is taken from source row Height−1−y. Dimensions are
// unchanged. Complexity: O(W×H).
func (p Piece) FlippedHorizontally() Piece {
	t := p.withCells(make([]Cell, len(p.cells)))
	for y := 0; y < p.Height; y++ {
		srcY := p.Height - y - 1
		for x := 0; x < p.Width; x++ {
			t.cells[y*p.Width+x] = p.cells[srcY*p.Width+x]
		}
	}

	return t
}

// FlippedVertically returns a copy mirrored across the vertical axis:
// the cell at column x is taken from source column Width−1−x within the
// same row. Dimensions are unchanged. Complexity: O(W×H).
func (p Piece) FlippedVertically() Piece {
	t := p.withCells(make([]Cell, len(p.cells)))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			srcX := p.Width - x - 1
			t.cells[y*p.Width+x] = p.cells[y*p.Width+srcX]
		}
	}

	return t
}

// Transposed returns a copy with width and height swapped; the cell at
// (x,y) of the result equals the cell at (y,x) of the source. For a
// non-square piece the bounding box changes shape. Complexity: O(W×H).
func (p Piece) Transposed() Piece {
	t := Piece{
		ID:     p.ID,
		Width:  p.Height,
		Height: p.Width,
		cells:  make([]Cell, len(p.cells)),
	}
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			t.cells[y*t.Width+x] = p.cells[x*p.Width+y]
		}
	}

	return t
}

// AllVariants returns every distinct orientation of p under flips and
// transpose: {identity, flipH, flipV, flipH∘flipV} applied to p and to its
// transpose, deduplicated by structural key. Every member keeps p.ID and
// p.OccupiedCount(); symmetric shapes collapse to fewer than 8 members.
//
// The result order is not part of the contract. Members are returned in
// sorted-key order so repeated runs enumerate identically.
// Complexity: O(W×H) time, O(W×H) memory (constant-factor 8).
func (p Piece) AllVariants() []Piece {
	orbit := make(map[string]Piece, 8)

	accumulate := func(start Piece) {
		orbit[start.Key()] = start
		horiz := start.FlippedHorizontally()
		orbit[horiz.Key()] = horiz
		vert := start.FlippedVertically()
		orbit[vert.Key()] = vert
		both := vert.FlippedHorizontally()
		orbit[both.Key()] = both
	}

	accumulate(p)
	accumulate(p.Transposed())

	keys := make([]string, 0, len(orbit))
	for k := range orbit {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Piece, 0, len(orbit))
	for _, k := range keys {
		out = append(out, orbit[k])
	}

	return out
}

// withCells returns a shallow header copy of p backed by the given slice.
func (p Piece) withCells(cells []Cell) Piece {
	return Piece{ID: p.ID, Width: p.Width, Height: p.Height, cells: cells}
}
