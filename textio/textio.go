// Package textio implements the text block parsers for
// github.com/katalvlaran/gridpack.
package textio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpack/board"
	"github.com/katalvlaran/gridpack/piece"
)

// Sentinel errors for text parsing.
var (
	// ErrEmptyInput indicates a block or stream with no lines.
	ErrEmptyInput = errors.New("textio: input must contain at least one line")
	// ErrUnexpectedChar indicates a character outside the format alphabet.
	ErrUnexpectedChar = errors.New("textio: unexpected character")
	// ErrDoubleBlank indicates two consecutive blank lines in a piece stream.
	ErrDoubleBlank = errors.New("textio: piece stream contains two consecutive blank lines")
)

// ParsePiece parses one piece block and tags it with id.
// Lines hold 'X' for occupied and ' ' for free cells; the block width is
// the longest line, and shorter lines are padded free on the right.
// Returns ErrEmptyInput for a block without lines, ErrUnexpectedChar
// (with position context) for any other character.
func ParsePiece(s string, id uint8) (piece.Piece, error) {
	lines := splitLines(s)
	if len(lines) == 0 {
		return piece.Piece{}, ErrEmptyInput
	}

	width := maxLen(lines)
	cells := make([]piece.Cell, width*len(lines))
	for y, line := range lines {
		for x, r := range line {
			switch r {
			case 'X':
				cells[y*width+x] = piece.Occupied
			case ' ':
				cells[y*width+x] = piece.Free
			default:
				return piece.Piece{}, charErr(r, y, x)
			}
		}
	}

	return piece.New(id, width, len(lines), cells)
}

// ParsePieces parses a stream of piece blocks separated by single blank
// lines, assigning sequential IDs starting at 0 in input order.
// Returns ErrDoubleBlank for two consecutive blank lines, ErrEmptyInput
// when the stream defines no piece at all.
func ParsePieces(s string) ([]piece.Piece, error) {
	var (
		pieces  []piece.Piece
		current []string
		id      uint8
	)

	flush := func() error {
		p, err := ParsePiece(strings.Join(current, "\n"), id)
		if err != nil {
			return fmt.Errorf("piece %d: %w", id, err)
		}
		pieces = append(pieces, p)
		current = current[:0]
		id++

		return nil
	}

	for _, line := range splitLines(s) {
		if line != "" {
			current = append(current, line)
			continue
		}
		if len(current) == 0 {
			return nil, ErrDoubleBlank
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if len(current) > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	if len(pieces) == 0 {
		return nil, ErrEmptyInput
	}

	return pieces, nil
}

// ParseBoard parses one board block: ' ' blocked, '-' free with score 0,
// '1'–'9' free with that score. The block width is the longest line, and
// shorter lines are padded blocked on the right.
// Returns ErrEmptyInput for a block without lines, ErrUnexpectedChar
// (with position context) for any other character.
func ParseBoard(s string) (board.Board, error) {
	lines := splitLines(s)
	if len(lines) == 0 {
		return board.Board{}, ErrEmptyInput
	}

	width := maxLen(lines)
	cells := make([]board.Cell, width*len(lines))
	for y, line := range lines {
		for x, r := range line {
			switch {
			case r == ' ':
				cells[y*width+x] = board.Cell{State: board.Blocked}
			case r == '-':
				cells[y*width+x] = board.Cell{State: board.Free}
			case r >= '1' && r <= '9':
				cells[y*width+x] = board.Cell{State: board.Free, Score: uint8(r - '0')}
			default:
				return board.Board{}, charErr(r, y, x)
			}
		}
	}

	return board.New(width, len(lines), cells)
}

// splitLines splits on '\n', dropping a final empty element so a trailing
// newline does not manufacture a phantom blank line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// maxLen returns the longest line length in bytes.
func maxLen(lines []string) int {
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	return width
}

// charErr wraps ErrUnexpectedChar with 1-based position context.
func charErr(r rune, y, x int) error {
	return fmt.Errorf("line %d, column %d (%q): %w", y+1, x+1, r, ErrUnexpectedChar)
}
