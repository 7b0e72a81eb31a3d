package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResetLayout(t *testing.T) {
	board := NewBoard()
	board.Place(MustPosition(4, 4), NewPiece(Black, Queen))
	board.Reset()

	want := map[string]Piece{}
	for file, pieceType := range []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook} {
		want[MustPosition(1, file+1).String()] = NewPiece(White, pieceType)
		want[MustPosition(2, file+1).String()] = NewPiece(White, Pawn)
		want[MustPosition(7, file+1).String()] = NewPiece(Black, Pawn)
		want[MustPosition(8, file+1).String()] = NewPiece(Black, pieceType)
	}

	got := map[string]Piece{}
	for rank := 1; rank <= 8; rank++ {
		for file := 1; file <= 8; file++ {
			p := MustPosition(rank, file)
			if piece, ok := board.Get(p); ok {
				got[p.String()] = piece
			}
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reset layout mismatch (-want +got):\n%s", diff)
	}
	if len(board.Pieces()) != 32 {
		t.Errorf("Pieces() = %d squares, want 32", len(board.Pieces()))
	}
}

func TestPlaceStoresValue(t *testing.T) {
	board := NewBoard()
	piece := NewPiece(White, Pawn)
	board.Place(pos(t, "e4"), piece)
	piece.Type = Queen

	got, ok := board.Get(pos(t, "e4"))
	if !ok {
		t.Fatal("e4 empty after Place")
	}
	if got != NewPiece(White, Pawn) {
		t.Errorf("Get(e4) = %+v, want white pawn", got)
	}
}

func TestPlaceZeroPieceClears(t *testing.T) {
	board := NewBoard()
	board.Reset()
	board.Place(pos(t, "e2"), Piece{})
	if _, ok := board.Get(pos(t, "e2")); ok {
		t.Error("e2 still occupied after placing zero piece")
	}
	board.Remove(pos(t, "d2"))
	if _, ok := board.Get(pos(t, "d2")); ok {
		t.Error("d2 still occupied after Remove")
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	original := NewBoard()
	original.Reset()
	dup := original.Duplicate()
	if !dup.Equal(original) {
		t.Fatal("duplicate differs from original")
	}

	dup.Remove(pos(t, "e2"))
	if _, ok := original.Get(pos(t, "e2")); !ok {
		t.Error("removing from duplicate cleared original")
	}
	original.Place(pos(t, "e4"), NewPiece(White, Knight))
	if _, ok := dup.Get(pos(t, "e4")); ok {
		t.Error("placing on original changed duplicate")
	}
	if dup.Equal(original) {
		t.Error("boards compare equal after diverging")
	}
}

func TestNewPositionBounds(t *testing.T) {
	tests := []struct {
		rank, file int
		wantErr    bool
	}{
		{1, 1, false},
		{8, 8, false},
		{4, 5, false},
		{0, 1, true},
		{1, 0, true},
		{9, 4, true},
		{4, 9, true},
		{-1, -1, true},
	}

	for _, tt := range tests {
		p, err := NewPosition(tt.rank, tt.file)
		if tt.wantErr {
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("NewPosition(%d, %d) err = %v, want ErrOutOfBounds", tt.rank, tt.file, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewPosition(%d, %d) unexpected error: %v", tt.rank, tt.file, err)
			continue
		}
		if p.Rank() != tt.rank || p.File() != tt.file {
			t.Errorf("NewPosition(%d, %d) = (%d, %d)", tt.rank, tt.file, p.Rank(), p.File())
		}
	}
}

func TestMustPositionPanicsOffBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPosition(9, 1) did not panic")
		}
	}()
	MustPosition(9, 1)
}

func TestPositionNotation(t *testing.T) {
	tests := []struct {
		square     string
		rank, file int
	}{
		{"a1", 1, 1},
		{"h8", 8, 8},
		{"e4", 4, 5},
		{"c7", 7, 3},
	}
	for _, tt := range tests {
		p := pos(t, tt.square)
		if p.Rank() != tt.rank || p.File() != tt.file {
			t.Errorf("ParsePosition(%q) = (%d, %d), want (%d, %d)", tt.square, p.Rank(), p.File(), tt.rank, tt.file)
		}
		if p.String() != tt.square {
			t.Errorf("String() = %q, want %q", p.String(), tt.square)
		}
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := ParsePosition(bad); err == nil {
			t.Errorf("ParsePosition(%q) succeeded, want error", bad)
		}
	}
	if (Position{}).Valid() {
		t.Error("zero Position reports valid")
	}
}

func TestKingPosition(t *testing.T) {
	board := NewBoard()
	board.Reset()
	if p, ok := board.KingPosition(White); !ok || p != pos(t, "e1") {
		t.Errorf("KingPosition(White) = %v, %v; want e1, true", p, ok)
	}
	if p, ok := board.KingPosition(Black); !ok || p != pos(t, "e8") {
		t.Errorf("KingPosition(Black) = %v, %v; want e8, true", p, ok)
	}

	board.Remove(pos(t, "e8"))
	if _, ok := board.KingPosition(Black); ok {
		t.Error("KingPosition(Black) found a king on a board without one")
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	for _, s := range []string{"e2e4", "g1f3", "e7e8q", "a2a1n", "b7c8r", "h7h8b"} {
		m := mv(t, s)
		if m.String() != s {
			t.Errorf("ParseMove(%q).String() = %q", s, m.String())
		}
	}
	for _, bad := range []string{"", "e2", "e2e9", "e7e8x", "e2e4qq"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) succeeded, want error", bad)
		}
	}
}
