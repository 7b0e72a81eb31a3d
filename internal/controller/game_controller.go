package controller

import (
	"github.com/benbeisheim/chess-rules/internal/middleware"
	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/service"
	"github.com/benbeisheim/chess-rules/internal/ws"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type LegalMovesResponse struct {
	Square   string       `json:"square"`
	HasPiece bool         `json:"hasPiece"`
	Moves    []model.Move `json:"moves"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	color, err := gc.gameService.JoinGame(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	square := c.Params("square")
	moves, hasPiece, err := gc.gameService.LegalMoves(c.Params("gameId"), square)
	if err != nil {
		return writeError(c, err)
	}
	if moves == nil {
		moves = []model.Move{}
	}
	return c.JSON(LegalMovesResponse{
		Square:   square,
		HasPiece: hasPiece,
		Moves:    moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var payload ws.MovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request body",
			Code:    ErrCodeInvalidRequest,
			Details: err.Error(),
		})
	}
	if err := validateStruct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation failed",
			Code:    ErrCodeInvalidRequest,
			Details: err.Error(),
		})
	}

	state, err := gc.gameService.HandleMove(c.Params("gameId"), middleware.PlayerID(c), payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}
