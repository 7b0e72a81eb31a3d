package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// PlayerIDKey is the fiber local holding the caller's player ID.
const PlayerIDKey = "playerID"

// EnsurePlayerID identifies the player behind a request. Browsers cannot set
// headers on a websocket handshake, so the playerId query parameter is
// accepted when X-Player-ID is absent. Unidentified requests get a 401.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(PlayerIDKey) != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required: send X-Player-ID or ?playerId=",
				"code":  "UNAUTHORIZED",
			})
		}

		c.Locals(PlayerIDKey, playerID)
		return c.Next()
	}
}

// PlayerID returns the ID stored by EnsurePlayerID, or "" outside it.
func PlayerID(c *fiber.Ctx) string {
	playerID, _ := c.Locals(PlayerIDKey).(string)
	return playerID
}
