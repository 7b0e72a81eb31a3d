package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/ws"
)

// Subscriber receives state pushes for a game. *websocket.Conn satisfies it.
type Subscriber interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The subscribers for a specific game
type subscribers struct {
	conns map[string]Subscriber // playerID -> connection
	mu    sync.RWMutex
}

// Session hosts one game. The mutex is the single writer lock for the
// model.Game, which is not safe for concurrent use on its own.
//
// pushMu orders state pushes: it is taken while mu is still held and kept
// for the whole fan-out, so subscribers see states in move order.
type Session struct {
	ID          string
	mu          sync.Mutex
	pushMu      sync.Mutex
	game        *model.Game
	players     ws.Players
	lastMove    *model.Move
	subscribers *subscribers
}

func NewSession(id string) *Session {
	return &Session{
		ID:   id,
		game: model.NewGame(),
		subscribers: &subscribers{
			conns: make(map[string]Subscriber),
		},
	}
}

// AddPlayer seats playerID, white first. Seating a player who already holds a
// seat returns that seat again.
func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if color, ok := s.colorOf(playerID); ok {
		return color, nil
	}
	if s.players.White == "" {
		s.players.White = playerID
		return model.White, nil
	}
	if s.players.Black == "" {
		s.players.Black = playerID
		return model.Black, nil
	}
	return "", ErrGameFull
}

// RemovePlayer frees playerID's seat as long as no move has been played.
func (s *Session) RemovePlayer(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastMove != nil {
		return false
	}
	switch color, ok := s.colorOf(playerID); {
	case !ok:
		return false
	case color == model.White:
		s.players.White = ""
	default:
		s.players.Black = ""
	}
	return true
}

func (s *Session) IsPlayerInGame(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.colorOf(playerID)
	return ok
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	switch {
	case playerID == "":
		return "", false
	case s.players.White == playerID:
		return model.White, true
	case s.players.Black == playerID:
		return model.Black, true
	}
	return "", false
}

// MakeMove plays move for playerID, who must hold the seat of the side to
// move, and pushes the new state to every subscriber.
func (s *Session) MakeMove(playerID string, move model.Move) (ws.GameStatePayload, error) {
	s.mu.Lock()
	color, ok := s.colorOf(playerID)
	if !ok {
		s.mu.Unlock()
		return ws.GameStatePayload{}, ErrNotInGame
	}
	if color != s.game.Turn() {
		s.mu.Unlock()
		return ws.GameStatePayload{}, ErrNotYourColor
	}
	if err := s.game.MakeMove(move); err != nil {
		s.mu.Unlock()
		return ws.GameStatePayload{}, err
	}
	s.lastMove = &move
	state := s.stateLocked()
	s.pushMu.Lock()
	s.mu.Unlock()
	defer s.pushMu.Unlock()

	log.Printf("game %s: %s played %s, status %s", s.ID, color, move, state.Status)
	s.broadcast(state)
	return state, nil
}

// LegalMoves lists the legal moves of the piece on pos. ok is false when the
// square is empty.
func (s *Session) LegalMoves(pos model.Position) (moves []model.Move, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ValidMoves(pos)
}

func (s *Session) State() ws.GameStatePayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() ws.GameStatePayload {
	board := s.game.Board()
	pieces := make(map[string]model.Piece)
	for _, sq := range board.Pieces() {
		pieces[sq.Position.String()] = sq.Piece
	}
	status := s.game.Status()
	var lastMove *model.Move
	if s.lastMove != nil {
		m := *s.lastMove
		lastMove = &m
	}
	return ws.GameStatePayload{
		GameID:   s.ID,
		Pieces:   pieces,
		Turn:     s.game.Turn(),
		Status:   status,
		IsCheck:  status == model.StatusCheck || status == model.StatusCheckmate,
		Players:  s.players,
		LastMove: lastMove,
	}
}

// Subscribe registers conn for state pushes and sends it the current state.
// A player keeps their first healthy connection; later ones are refused.
func (s *Session) Subscribe(playerID string, conn Subscriber) error {
	s.mu.Lock()
	state := s.stateLocked()
	s.pushMu.Lock()
	s.mu.Unlock()
	defer s.pushMu.Unlock()

	s.subscribers.mu.Lock()
	if _, exists := s.subscribers.conns[playerID]; exists {
		s.subscribers.mu.Unlock()
		return ErrAlreadyConnected
	}
	s.subscribers.conns[playerID] = conn
	s.subscribers.mu.Unlock()
	log.Printf("game %s: registered connection for player %s", s.ID, playerID)

	if err := s.send(playerID, conn, state); err != nil {
		s.Unsubscribe(playerID, conn)
		return err
	}
	return nil
}

// Unsubscribe drops playerID's connection if it is still conn.
func (s *Session) Unsubscribe(playerID string, conn Subscriber) {
	s.subscribers.mu.Lock()
	defer s.subscribers.mu.Unlock()

	if current, exists := s.subscribers.conns[playerID]; exists && current == conn {
		log.Printf("game %s: unregistering connection for player %s", s.ID, playerID)
		delete(s.subscribers.conns, playerID)
	}
}

func (s *Session) SubscriberCount() int {
	s.subscribers.mu.RLock()
	defer s.subscribers.mu.RUnlock()
	return len(s.subscribers.conns)
}

func (s *Session) broadcast(state ws.GameStatePayload) {
	// Snapshot under the read lock, write without holding it.
	s.subscribers.mu.RLock()
	active := make(map[string]Subscriber, len(s.subscribers.conns))
	for playerID, conn := range s.subscribers.conns {
		active[playerID] = conn
	}
	s.subscribers.mu.RUnlock()

	for playerID, conn := range active {
		if err := s.send(playerID, conn, state); err != nil {
			log.Printf("game %s: %v", s.ID, err)
			s.Unsubscribe(playerID, conn)
		}
	}
}

func (s *Session) send(playerID string, conn Subscriber, state ws.GameStatePayload) error {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send state to player %s: %w", playerID, err)
	}
	return nil
}
