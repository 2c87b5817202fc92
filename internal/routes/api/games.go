package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
)

// errorStatus maps errors of the game packages to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, othello.ErrInvalidField):
		return fiber.StatusBadRequest
	case errors.Is(err, othello.ErrInvalidMove),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrPassNotAllowed):
		return fiber.StatusConflict
	case errors.Is(err, game.ErrRegistryFull):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func getServices(c *fiber.Ctx) *services.Services {
	return c.Locals("services").(*services.Services) //nolint: errcheck
}

// loadGame looks up the game in the :id route parameter.
func loadGame(c *fiber.Ctx) (*game.Game, error) {
	id := c.Params("id")
	c.Locals("game_id", id)
	return getServices(c).Games.GetString(id)
}

// CreateGame starts a new game.
func CreateGame(c *fiber.Ctx) error {
	var payload models.NewGamePayload

	// An empty body starts a game between two humans.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	computer, err := payload.ComputerColor()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	g, err := getServices(c).Games.Create(computer)
	if err != nil {
		return sendError(c, err)
	}

	c.Locals("game_id", g.ID().String())
	slog.Info("game created", "game", g.ID(), "computer", computer)

	return c.Status(fiber.StatusCreated).JSON(models.NewGameResponse(g.State()))
}

// GetGame returns the state of a game.
func GetGame(c *fiber.Ctx) error {
	g, err := loadGame(c)
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(g.State()))
}

// DeleteGame removes a game.
func DeleteGame(c *fiber.Ctx) error {
	g, err := loadGame(c)
	if err != nil {
		return sendError(c, err)
	}

	if err = getServices(c).Games.Delete(g.ID()); err != nil {
		return sendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// PlayMove plays a move for the human side to move.
func PlayMove(c *fiber.Ctx) error {
	var payload models.MovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	move, err := payload.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	g, err := loadGame(c)
	if err != nil {
		return sendError(c, err)
	}

	if err = g.Play(move); err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(g.State()))
}

// Pass passes for a side without legal moves.
func Pass(c *fiber.Ctx) error {
	g, err := loadGame(c)
	if err != nil {
		return sendError(c, err)
	}

	if err = g.Pass(); err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(g.State()))
}

// ComputerMove lets the computer play. This blocks until the search is done.
func ComputerMove(c *fiber.Ctx) error {
	g, err := loadGame(c)
	if err != nil {
		return sendError(c, err)
	}

	move, ok, err := g.PlayComputer()
	if err != nil {
		return sendError(c, err)
	}

	response := models.ComputerMoveResponse{
		Passed: !ok,
		Game:   models.NewGameResponse(g.State()),
	}
	if ok {
		response.Move = move.String()
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// Undo takes back the last human move.
func Undo(c *fiber.Ctx) error {
	g, err := loadGame(c)
	if err != nil {
		return sendError(c, err)
	}

	g.Undo()

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(g.State()))
}
