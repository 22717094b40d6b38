// Package textio parses the line-oriented text format for boards and
// pieces. It is the boundary layer in front of the core packages: all
// format errors live here, and the values it produces are well-formed by
// construction.
//
// What:
//
//   - ParsePiece reads one piece block: lines of 'X' (occupied) and ' '
//     (free). Block width is the longest line; shorter lines are padded
//     with free cells on the right.
//   - ParsePieces reads a whole piece stream: blocks separated by a single
//     blank line, IDs assigned sequentially (0, 1, 2, …) in input order.
//   - ParseBoard reads a board block: ' ' blocked, '-' free and worthless,
//     digits '1'–'9' free with that score. Shorter lines are padded with
//     blocked cells.
//
// Why:
//
//   - Keeping the character-level format out of piece/ and board/ means the
//     core never needs a recoverable-error surface: malformed text stops
//     here, and downstream code only ever sees validated grids.
//
// Rendering is the inverse of parsing and lives on the core types
// themselves (piece.Piece.String, board.Board.String).
//
// Errors:
//
//   - ErrEmptyInput: a block or stream contains no lines at all.
//   - ErrUnexpectedChar: a character outside the format's alphabet
//     (wrapped with line and column context).
//   - ErrDoubleBlank: two consecutive blank lines inside a piece stream.
package textio
