package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chess-rules/internal/middleware"
	"github.com/benbeisheim/chess-rules/internal/service"
	"github.com/benbeisheim/chess-rules/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// lockedConn serializes writes to a socket that sessions broadcast to from
// other goroutines.
type lockedConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (l *lockedConn) WriteJSON(v interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Conn.WriteJSON(v)
}

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
// on a game. It pushes game state and accepts move messages until the
// client goes away.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	conn := &lockedConn{Conn: c}

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		log.Printf("failed to register connection: %v", err)
		wsc.sendError(conn, err)
		return
	}
	// Clean up when connection closes
	defer wsc.gameService.UnregisterConnection(gameID, playerID, conn)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			wsc.sendError(conn, fmt.Errorf("%w: malformed message: %v", ErrInvalidRequest, err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Printf("handle error: %v", err)
			wsc.sendError(conn, err)
		}
	}
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var payload ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("%w: malformed move: %v", ErrInvalidRequest, err)
		}
		if err := validateStruct(payload); err != nil {
			return err
		}
		// The session broadcasts the new state to every subscriber,
		// including this one.
		_, err := wsc.gameService.HandleMove(gameID, playerID, payload)
		return err
	default:
		return fmt.Errorf("%w: unknown message type %q", ErrInvalidRequest, msg.Type)
	}
}

// HandleMatchmaking queues the player and reports the game they are paired
// into. Closing the socket leaves the queue.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)

	matches, err := wsc.gameService.JoinMatchmaking(playerID)
	if err != nil {
		wsc.sendError(c, err)
		return
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case match, ok := <-matches:
		if !ok {
			return
		}
		msg, err := ws.NewMessage(ws.MessageTypeMatchFound, ws.MatchFoundPayload{
			GameID: match.GameID,
			Color:  match.Color,
		})
		if err != nil {
			log.Printf("marshal match: %v", err)
			return
		}
		if err := c.WriteJSON(msg); err != nil {
			log.Printf("failed to send match to player %s: %v", playerID, err)
		}
	case <-closed:
		wsc.gameService.LeaveMatchmaking(playerID, matches)
	}
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(c service.Subscriber, err error) {
	_, code := classify(err)
	msg, merr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error(), Code: code})
	if merr != nil {
		log.Printf("marshal error message: %v", merr)
		return
	}
	if werr := c.WriteJSON(msg); werr != nil {
		log.Printf("failed to send error: %v", werr)
	}
}
