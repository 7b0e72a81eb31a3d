package service

import (
	"fmt"
	"log"

	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	session, err := gs.gameManager.CreateGame()
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return session.ID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return session.AddPlayer(playerID)
}

func (gs *GameService) GetGameState(gameID string) (ws.GameStatePayload, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return ws.GameStatePayload{}, err
	}
	return session.State(), nil
}

// LegalMoves lists the legal moves from square. hasPiece is false when the
// square is empty.
func (gs *GameService) LegalMoves(gameID string, square string) (moves []model.Move, hasPiece bool, err error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, false, err
	}
	pos, err := model.ParsePosition(square)
	if err != nil {
		return nil, false, err
	}
	moves, hasPiece = session.LegalMoves(pos)
	return moves, hasPiece, nil
}

func (gs *GameService) HandleMove(gameID string, playerID string, payload ws.MovePayload) (ws.GameStatePayload, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return ws.GameStatePayload{}, err
	}
	move, err := payload.Move()
	if err != nil {
		return ws.GameStatePayload{}, fmt.Errorf("%w: %v", model.ErrInvalidMove, err)
	}
	return session.MakeMove(playerID, move)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Subscriber) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.Subscribe(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Subscriber) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.Unsubscribe(playerID, conn)
}

func (gs *GameService) JoinMatchmaking(playerID string) (<-chan Match, error) {
	return gs.gameManager.JoinMatchmaking(playerID)
}

// LeaveMatchmaking takes playerID out of the queue. matches is the channel
// JoinMatchmaking returned; if a match was delivered on it before the player
// left, the unclaimed seat is given up. It reports whether that happened.
func (gs *GameService) LeaveMatchmaking(playerID string, matches <-chan Match) bool {
	gs.gameManager.LeaveMatchmaking(playerID)
	// The channel is closed by now, either just above or after delivery.
	match, ok := <-matches
	if !ok {
		return false
	}
	session, err := gs.gameManager.GetGame(match.GameID)
	if err != nil {
		return false
	}
	if !session.RemovePlayer(playerID) {
		log.Printf("player %s left matchmaking after game %s started", playerID, match.GameID)
		return false
	}
	log.Printf("player %s left before claiming %s in game %s, seat freed", playerID, match.Color, match.GameID)
	return true
}
