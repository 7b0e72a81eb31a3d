package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade guards the game and matchmaking sockets: plain HTTP
// requests get 426 and handshakes without a player get 401. The player ID
// local survives the upgrade, so it must run after EnsurePlayerID.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if PlayerID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
				"code":  "UNAUTHORIZED",
			})
		}
		return c.Next()
	}
}
