package model

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds      = errors.New("position out of bounds")
	ErrInvalidPieceType = errors.New("invalid piece type")
	ErrInvalidColor     = errors.New("invalid color")
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Valid() bool {
	return c == White || c == Black
}

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the rank direction pawns of this color advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) pawnStartRank() int {
	if c == White {
		return 2
	}
	return 7
}

func (c Color) promotionRank() int {
	if c == White {
		return 8
	}
	return 1
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// Notation returns the upper case letter used for the piece in algebraic
// notation. Pawns have no letter.
func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece is a value; the zero Piece is an empty square.
type Piece struct {
	Color Color     `json:"color"`
	Type  PieceType `json:"type"`
}

func NewPiece(color Color, pieceType PieceType) Piece {
	return Piece{Color: color, Type: pieceType}
}

func (p Piece) IsZero() bool {
	return p == Piece{}
}

// Position is a square on the board. Rank and file both run 1..8, rank 1
// being White's back rank and file 1 the a-file. The zero Position is not
// on the board.
type Position struct {
	rank int8
	file int8
}

func NewPosition(rank, file int) (Position, error) {
	if !inBounds(rank, file) {
		return Position{}, fmt.Errorf("%w: rank %d file %d", ErrOutOfBounds, rank, file)
	}
	return Position{rank: int8(rank), file: int8(file)}, nil
}

// MustPosition is NewPosition for coordinates known to be on the board.
func MustPosition(rank, file int) Position {
	pos, err := NewPosition(rank, file)
	if err != nil {
		panic(err)
	}
	return pos
}

func (p Position) Rank() int { return int(p.rank) }
func (p Position) File() int { return int(p.file) }

func (p Position) Valid() bool {
	return inBounds(int(p.rank), int(p.file))
}

// offset returns the square dr ranks and df files away, or false when that
// square is off the board.
func (p Position) offset(dr, df int) (Position, bool) {
	rank, file := int(p.rank)+dr, int(p.file)+df
	if !inBounds(rank, file) {
		return Position{}, false
	}
	return Position{rank: int8(rank), file: int8(file)}, true
}

func inBounds(rank, file int) bool {
	return rank >= 1 && rank <= 8 && file >= 1 && file <= 8
}

// Board is an 8x8 grid of optional pieces. Squares hold Piece values, so
// copying a Board copies every square.
type Board struct {
	squares [8][8]Piece
}

func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece at pos and whether the square is occupied.
func (b *Board) Get(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	piece := b.squares[pos.rank-1][pos.file-1]
	return piece, !piece.IsZero()
}

// Place puts piece on pos, replacing whatever was there. Placing the zero
// Piece clears the square.
func (b *Board) Place(pos Position, piece Piece) {
	if !pos.Valid() {
		panic(fmt.Errorf("%w: place at %v", ErrOutOfBounds, pos))
	}
	b.squares[pos.rank-1][pos.file-1] = piece
}

func (b *Board) Remove(pos Position) {
	b.Place(pos, Piece{})
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Reset clears the board and sets up the standard starting position.
func (b *Board) Reset() {
	b.squares = [8][8]Piece{}
	for file := 1; file <= 8; file++ {
		b.Place(MustPosition(1, file), NewPiece(White, backRank[file-1]))
		b.Place(MustPosition(2, file), NewPiece(White, Pawn))
		b.Place(MustPosition(7, file), NewPiece(Black, Pawn))
		b.Place(MustPosition(8, file), NewPiece(Black, backRank[file-1]))
	}
}

// Duplicate returns a deep copy that shares nothing with b.
func (b *Board) Duplicate() *Board {
	dup := *b
	return &dup
}

func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.squares == other.squares
}

// Square is an occupied square, as yielded by Pieces.
type Square struct {
	Position Position `json:"position"`
	Piece    Piece    `json:"piece"`
}

// Pieces lists every occupied square from a1 to h8, rank by rank.
func (b *Board) Pieces() []Square {
	squares := []Square{}
	for rank := 1; rank <= 8; rank++ {
		for file := 1; file <= 8; file++ {
			pos := MustPosition(rank, file)
			if piece, ok := b.Get(pos); ok {
				squares = append(squares, Square{Position: pos, Piece: piece})
			}
		}
	}
	return squares
}

// KingPosition finds the king of color. The second result is false when the
// board has no such king.
func (b *Board) KingPosition(color Color) (Position, bool) {
	for _, sq := range b.Pieces() {
		if sq.Piece.Type == King && sq.Piece.Color == color {
			return sq.Position, true
		}
	}
	return Position{}, false
}
