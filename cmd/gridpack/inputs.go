package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpack/board"
	"github.com/katalvlaran/gridpack/piece"
	"github.com/katalvlaran/gridpack/textio"
)

// readBoardFile loads and parses a board text file.
func readBoardFile(path string) (board.Board, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return board.Board{}, fmt.Errorf("read board file: %w", err)
	}
	b, err := textio.ParseBoard(string(raw))
	if err != nil {
		return board.Board{}, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

// readPiecesFile loads and parses a blank-line-separated piece stream.
func readPiecesFile(path string) ([]piece.Piece, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pieces file: %w", err)
	}
	pieces, err := textio.ParsePieces(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pieces, nil
}

// pieceLetter maps a piece ID onto its report letter ('A' + id).
func pieceLetter(id uint8) byte {
	return 'A' + id
}
