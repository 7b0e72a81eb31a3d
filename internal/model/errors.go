package model

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the single error MakeMove returns. Use errors.As with
// *InvalidMoveError to find out why.
var ErrInvalidMove = errors.New("invalid move")

type InvalidMoveKind int

const (
	NoPiece InvalidMoveKind = iota + 1
	WrongTurn
	IllegalMove
)

func (k InvalidMoveKind) String() string {
	switch k {
	case NoPiece:
		return "there is no piece selected"
	case WrongTurn:
		return "wrong team selected"
	case IllegalMove:
		return "not a valid move"
	}
	return "unknown"
}

type InvalidMoveError struct {
	Kind InvalidMoveKind
	Move Move
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("%v %s: %s", ErrInvalidMove, e.Move, e.Kind)
}

func (e *InvalidMoveError) Unwrap() error {
	return ErrInvalidMove
}

func invalidMove(kind InvalidMoveKind, move Move) error {
	return &InvalidMoveError{Kind: kind, Move: move}
}
