package ws

import (
	"encoding/json"

	"github.com/benbeisheim/chess-rules/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeMatchFound MessageType = "matchFound"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func NewMessage(msgType MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Payload: raw}, nil
}

// MovePayload is a move as sent by clients, squares in algebraic notation.
type MovePayload struct {
	From      string `json:"from" validate:"required,len=2"`
	To        string `json:"to" validate:"required,len=2"`
	Promotion string `json:"promotion,omitempty" validate:"omitempty,oneof=queen rook bishop knight"`
}

// Move converts the payload into a model move.
func (p MovePayload) Move() (model.Move, error) {
	from, err := model.ParsePosition(p.From)
	if err != nil {
		return model.Move{}, err
	}
	to, err := model.ParsePosition(p.To)
	if err != nil {
		return model.Move{}, err
	}
	move := model.NewMove(from, to)
	if p.Promotion != "" {
		promotion, err := model.ParsePieceType(p.Promotion)
		if err != nil {
			return model.Move{}, err
		}
		move.Promotion = promotion
	}
	return move, nil
}

type Players struct {
	White string `json:"white"`
	Black string `json:"black"`
}

type GameStatePayload struct {
	GameID   string                 `json:"gameId"`
	Pieces   map[string]model.Piece `json:"pieces"`
	Turn     model.Color            `json:"turn"`
	Status   model.Status           `json:"status"`
	IsCheck  bool                   `json:"isCheck"`
	Players  Players                `json:"players"`
	LastMove *model.Move            `json:"lastMove"` // nil until the first move
}

type MatchFoundPayload struct {
	GameID string      `json:"gameId"`
	Color  model.Color `json:"color"`
}

type ErrorPayload struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
