package model

import (
	"fmt"
	"strings"
)

// String returns the square in algebraic notation, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+p.file-1, p.rank)
}

// FileNotation returns just the file letter of the square.
func (p Position) FileNotation() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c", 'a'+p.file-1)
}

// ParsePosition reads a square in algebraic notation.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	file := int(strings.ToLower(s[:1])[0]-'a') + 1
	rank := int(s[1]-'0')
	return NewPosition(rank, file)
}

func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: marshal zero position", ErrOutOfBounds)
	}
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(text []byte) error {
	pos, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// ParsePieceType accepts a full name ("queen") or an algebraic letter
// ("q", "Q").
func ParsePieceType(s string) (PieceType, error) {
	switch strings.ToLower(s) {
	case "k", string(King):
		return King, nil
	case "q", string(Queen):
		return Queen, nil
	case "r", string(Rook):
		return Rook, nil
	case "b", string(Bishop):
		return Bishop, nil
	case "n", string(Knight):
		return Knight, nil
	case "p", string(Pawn):
		return Pawn, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPieceType, s)
}

// ParseColor accepts "white"/"black" or "w"/"b".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "w", string(White):
		return White, nil
	case "b", string(Black):
		return Black, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.Start.String() + m.End.String()
	if m.Promotion != "" {
		s += strings.ToLower(m.Promotion.Notation())
	}
	return s
}

// ParseMove reads coordinate notation as produced by Move.String.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("malformed move %q", s)
	}
	start, err := ParsePosition(s[:2])
	if err != nil {
		return Move{}, err
	}
	end, err := ParsePosition(s[2:4])
	if err != nil {
		return Move{}, err
	}
	move := Move{Start: start, End: end}
	if len(s) == 5 {
		promotion, err := ParsePieceType(s[4:])
		if err != nil {
			return Move{}, err
		}
		move.Promotion = promotion
	}
	return move, nil
}
