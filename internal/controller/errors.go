package controller

import (
	"errors"

	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/service"
	"github.com/gofiber/fiber/v2"
)

// ErrInvalidRequest marks a request or websocket message that could not be
// parsed or failed validation.
var ErrInvalidRequest = errors.New("invalid request")

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeGameNotFound      = "GAME_NOT_FOUND"
	ErrCodeGameFull          = "GAME_FULL"
	ErrCodeInvalidMove       = "INVALID_MOVE"
	ErrCodeNotInGame         = "NOT_IN_GAME"
	ErrCodeNotYourTurn       = "NOT_YOUR_TURN"
	ErrCodeAlreadyQueued     = "ALREADY_QUEUED"
	ErrCodeAlreadyConnected  = "ALREADY_CONNECTED"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// classify maps a service or model error onto an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound, ErrCodeGameNotFound
	case errors.Is(err, service.ErrGameFull):
		return fiber.StatusConflict, ErrCodeGameFull
	case errors.Is(err, service.ErrNotInGame):
		return fiber.StatusForbidden, ErrCodeNotInGame
	case errors.Is(err, service.ErrNotYourColor):
		return fiber.StatusConflict, ErrCodeNotYourTurn
	case errors.Is(err, service.ErrAlreadyQueued):
		return fiber.StatusConflict, ErrCodeAlreadyQueued
	case errors.Is(err, service.ErrAlreadyConnected):
		return fiber.StatusConflict, ErrCodeAlreadyConnected
	case errors.Is(err, model.ErrInvalidMove):
		return fiber.StatusUnprocessableEntity, ErrCodeInvalidMove
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, model.ErrInvalidPieceType):
		return fiber.StatusBadRequest, ErrCodeInvalidRequest
	}
	return fiber.StatusInternalServerError, ErrCodeInternalError
}

func writeError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	return c.Status(status).JSON(ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

// customErrorHandler provides consistent error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	response := ErrorResponse{
		Error: "internal server error",
		Code:  ErrCodeInternalError,
	}

	// Check if it's a Fiber error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		response.Error = e.Message

		// Map HTTP status to error codes
		switch code {
		case fiber.StatusNotFound:
			response.Code = ErrCodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUpgradeRequired:
			response.Code = ErrCodeInvalidRequest
		case fiber.StatusTooManyRequests:
			response.Code = ErrCodeRateLimitExceeded
		}
	}

	return c.Status(code).JSON(response)
}
