package model

// Game owns one board and the side to move. A Game is not safe for
// concurrent use; callers that share one must serialize access. Create games
// with NewGame; the zero Game has no board.
type Game struct {
	board *Board
	turn  Color
}

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheck     Status = "check"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

// NewGame returns a game in the standard starting position with White to
// move.
func NewGame() *Game {
	board := NewBoard()
	board.Reset()
	return &Game{board: board, turn: White}
}

func (g *Game) Turn() Color {
	return g.turn
}

func (g *Game) SetTurn(color Color) {
	g.turn = color
}

// Board returns a copy of the game's board.
func (g *Game) Board() *Board {
	return g.board.Duplicate()
}

// SetBoard replaces the game's board with a copy of board. A nil board
// leaves the game with an empty one.
func (g *Game) SetBoard(board *Board) {
	if board == nil {
		g.board = NewBoard()
		return
	}
	g.board = board.Duplicate()
}

func (g *Game) Equal(other *Game) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.turn == other.turn && g.board.Equal(other.board)
}

// ValidMoves returns the legal moves of the piece on pos. The second result
// is false when no piece stands there.
func (g *Game) ValidMoves(pos Position) ([]Move, bool) {
	return LegalMoves(g.board, pos)
}

// AllValidMoves returns the legal moves of every piece of color.
func (g *Game) AllValidMoves(color Color) []Move {
	moves := []Move{}
	for _, sq := range g.board.Pieces() {
		if sq.Piece.Color != color {
			continue
		}
		legal, _ := LegalMoves(g.board, sq.Position)
		moves = append(moves, legal...)
	}
	return moves
}

// MakeMove validates move against the side to move and the legal moves of
// the piece on its start square, then plays it and passes the turn. A
// rejected move leaves the game untouched.
func (g *Game) MakeMove(move Move) error {
	piece, ok := g.board.Get(move.Start)
	if !ok {
		return invalidMove(NoPiece, move)
	}
	if piece.Color != g.turn {
		return invalidMove(WrongTurn, move)
	}
	legal, _ := LegalMoves(g.board, move.Start)
	if !ContainsMove(legal, move) {
		return invalidMove(IllegalMove, move)
	}

	applyMove(g.board, move, piece)
	if move.Promotion != "" {
		g.board.Place(move.End, NewPiece(g.turn, move.Promotion))
	}
	g.turn = g.turn.Opponent()
	return nil
}

func (g *Game) IsInCheck(color Color) bool {
	return InCheck(g.board, color)
}

// IsInCheckmate reports whether color is in check with no legal move.
func (g *Game) IsInCheckmate(color Color) bool {
	if !g.IsInCheck(color) {
		return false
	}
	return !hasLegalMove(g.board, color)
}

// IsInStalemate reports whether color has no legal move while not in check.
func (g *Game) IsInStalemate(color Color) bool {
	if g.IsInCheck(color) {
		return false
	}
	return !hasLegalMove(g.board, color)
}

// Status reports the position from the point of view of the side to move.
func (g *Game) Status() Status {
	check := g.IsInCheck(g.turn)
	switch {
	case hasLegalMove(g.board, g.turn):
		if check {
			return StatusCheck
		}
		return StatusOngoing
	case check:
		return StatusCheckmate
	default:
		return StatusStalemate
	}
}

// LegalMoves returns the pseudo-legal moves of the piece on from that do not
// leave its own king in check. The second result is false when from is
// empty.
func LegalMoves(board *Board, from Position) ([]Move, bool) {
	piece, ok := board.Get(from)
	if !ok {
		return nil, false
	}
	legal := []Move{}
	for _, move := range piece.Moves(board, from) {
		if IsKingSafeAfter(board, move, piece.Color) {
			legal = append(legal, move)
		}
	}
	return legal, true
}

// IsKingSafeAfter plays move on a copy of board and reports whether color's
// king is out of check afterwards. board itself is never modified.
// Promotion does not change whether the king is attacked, so it is ignored.
func IsKingSafeAfter(board *Board, move Move, color Color) bool {
	piece, ok := board.Get(move.Start)
	if !ok {
		return !InCheck(board, color)
	}
	dup := board.Duplicate()
	applyMove(dup, move, piece)
	return !InCheck(dup, color)
}

// InCheck reports whether any pseudo-legal move of color's opponent lands on
// color's king. A board without a king of color is never in check.
func InCheck(board *Board, color Color) bool {
	king, ok := board.KingPosition(color)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, color.Opponent(), king)
}

// IsSquareAttacked reports whether a piece of attacker could move to pos.
func IsSquareAttacked(board *Board, attacker Color, pos Position) bool {
	for _, sq := range board.Pieces() {
		if sq.Piece.Color != attacker {
			continue
		}
		for _, move := range sq.Piece.Moves(board, sq.Position) {
			if move.End == pos {
				return true
			}
		}
	}
	return false
}

func hasLegalMove(board *Board, color Color) bool {
	for _, sq := range board.Pieces() {
		if sq.Piece.Color != color {
			continue
		}
		if legal, _ := LegalMoves(board, sq.Position); len(legal) > 0 {
			return true
		}
	}
	return false
}

func applyMove(board *Board, move Move, piece Piece) {
	board.Place(move.End, piece)
	board.Remove(move.Start)
}
