// File: board/example_test.go
package board_test

import (
	"fmt"

	"github.com/katalvlaran/gridpack/board"
	"github.com/katalvlaran/gridpack/piece"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Placements
////////////////////////////////////////////////////////////////////////////////

// ExampleBoard_Placements enumerates every placement of a horizontal domino
// on a 3×1 strip whose middle cell is worth 5.
// Scenario:
//
//   - Strip "-5-": two worthless free cells around one scored cell.
//   - A 2×1 domino fits at anchors (0,0) and (1,0); both cover the 5, so
//     each placement drops the residual score from 5 to 0.
func ExampleBoard_Placements() {
	b, _ := board.New(3, 1, []board.Cell{
		{State: board.Free},
		{State: board.Free, Score: 5},
		{State: board.Free},
	})
	domino, _ := piece.New(0, 2, 1, []piece.Cell{piece.Occupied, piece.Occupied})

	it := b.Placements(domino)
	for placed, ok := it.Next(); ok; placed, ok = it.Next() {
		fmt.Printf("%s score=%d\n", placed, placed.Score())
	}
	// Output:
	// AA- score=0
	// -AA score=0
}
