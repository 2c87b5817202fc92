package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.Token())

	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Delete("/games/:id", DeleteGame)

	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Post("/games/:id/pass", Pass)
	apiGroup.Post("/games/:id/computer", ComputerMove)
	apiGroup.Post("/games/:id/undo", Undo)
}
