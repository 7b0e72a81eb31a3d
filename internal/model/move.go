package model

import "slices"

// Move takes the piece on Start to End. Promotion is empty unless a pawn
// reaches its last rank.
type Move struct {
	Start     Position  `json:"from"`
	End       Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func NewMove(start, end Position) Move {
	return Move{Start: start, End: end}
}

func ContainsMove(moves []Move, move Move) bool {
	return slices.Contains(moves, move)
}

// promotionChoices is the fan-out order for a pawn reaching its last rank.
var promotionChoices = [4]PieceType{Queen, Bishop, Rook, Knight}
