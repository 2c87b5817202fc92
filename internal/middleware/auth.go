package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
)

// Token middleware checks the x-token header if the server is configured with a token.
func Token() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		if cfg.Token == "" || c.Get("x-token") == cfg.Token {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
}
