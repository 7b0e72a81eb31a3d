package model

import "fmt"

type direction struct {
	dr, df int
}

var (
	rookDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = append(append([]direction{}, rookDirs...), bishopDirs...)
	knightDirs = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = queenDirs
)

// Moves returns the pseudo-legal moves of p standing on from: moves that
// follow the piece's movement and occupancy rules but may leave its own
// king in check.
func (p Piece) Moves(board *Board, from Position) []Move {
	switch p.Type {
	case Pawn:
		return p.pawnMoves(board, from)
	case Knight:
		return p.stepMoves(board, from, knightDirs)
	case Bishop:
		return p.slideMoves(board, from, bishopDirs)
	case Rook:
		return p.slideMoves(board, from, rookDirs)
	case Queen:
		return p.slideMoves(board, from, queenDirs)
	case King:
		return p.stepMoves(board, from, kingDirs)
	}
	panic(fmt.Errorf("%w: %q", ErrInvalidPieceType, p.Type))
}

// slideMoves walks each ray until the edge, a friendly piece (excluded) or
// an enemy piece (included as a capture).
func (p Piece) slideMoves(board *Board, from Position, dirs []direction) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		target, ok := from.offset(dir.dr, dir.df)
		for ok {
			occupant, occupied := board.Get(target)
			if occupied {
				if occupant.Color != p.Color {
					moves = append(moves, NewMove(from, target))
				}
				break
			}
			moves = append(moves, NewMove(from, target))
			target, ok = target.offset(dir.dr, dir.df)
		}
	}
	return moves
}

// stepMoves tries a single jump in each direction.
func (p Piece) stepMoves(board *Board, from Position, dirs []direction) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		target, ok := from.offset(dir.dr, dir.df)
		if !ok {
			continue
		}
		if occupant, occupied := board.Get(target); occupied && occupant.Color == p.Color {
			continue
		}
		moves = append(moves, NewMove(from, target))
	}
	return moves
}

func (p Piece) pawnMoves(board *Board, from Position) []Move {
	moves := []Move{}
	forward := p.Color.forward()

	if one, ok := from.offset(forward, 0); ok && isEmpty(board, one) {
		moves = p.appendPawnMove(moves, from, one)
		// A pawn can never move back to its starting rank, so standing on it
		// means the pawn has not moved yet.
		if from.Rank() == p.Color.pawnStartRank() {
			if two, ok := from.offset(2*forward, 0); ok && isEmpty(board, two) {
				moves = append(moves, NewMove(from, two))
			}
		}
	}

	for _, df := range []int{-1, 1} {
		target, ok := from.offset(forward, df)
		if !ok {
			continue
		}
		if occupant, occupied := board.Get(target); occupied && occupant.Color != p.Color {
			moves = p.appendPawnMove(moves, from, target)
		}
	}
	return moves
}

// appendPawnMove fans a move onto the last rank out into one move per
// promotion choice.
func (p Piece) appendPawnMove(moves []Move, from, to Position) []Move {
	if to.Rank() != p.Color.promotionRank() {
		return append(moves, NewMove(from, to))
	}
	for _, promotion := range promotionChoices {
		moves = append(moves, Move{Start: from, End: to, Promotion: promotion})
	}
	return moves
}

func isEmpty(board *Board, pos Position) bool {
	_, occupied := board.Get(pos)
	return !occupied
}
