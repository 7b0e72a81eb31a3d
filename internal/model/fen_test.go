package model

import (
	"strings"
	"testing"
)

// gameFromFEN builds a game from the placement and side-to-move fields of a
// FEN string. Castling and en passant fields are ignored.
func gameFromFEN(t *testing.T, fen string) *Game {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		t.Fatalf("fen %q: want at least 2 fields", fen)
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		t.Fatalf("fen %q: want 8 ranks, got %d", fen, len(ranks))
	}

	board := NewBoard()
	for i, row := range ranks {
		rank := 8 - i
		file := 1
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
			}
			pieceType, err := ParsePieceType(string(ch))
			if err != nil {
				t.Fatalf("fen %q: %v", fen, err)
			}
			board.Place(MustPosition(rank, file), NewPiece(color, pieceType))
			file++
		}
		if file != 9 {
			t.Fatalf("fen %q: rank %d has %d files", fen, rank, file-1)
		}
	}

	turn, err := ParseColor(fields[1])
	if err != nil {
		t.Fatalf("fen %q: %v", fen, err)
	}
	game := NewGame()
	game.SetBoard(board)
	game.SetTurn(turn)
	return game
}

func pos(t *testing.T, square string) Position {
	t.Helper()
	p, err := ParsePosition(square)
	if err != nil {
		t.Fatalf("parse %q: %v", square, err)
	}
	return p
}

func mv(t *testing.T, notation string) Move {
	t.Helper()
	m, err := ParseMove(notation)
	if err != nil {
		t.Fatalf("parse move %q: %v", notation, err)
	}
	return m
}

// moveStrings renders moves in coordinate notation for readable diffs.
func moveStrings(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
