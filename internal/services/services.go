package services

import (
	"log/slog"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
)

// Services contains the state shared by all request handlers.
type Services struct {
	Games *game.Registry
}

func InitServices(cfg *config.ServerConfig) *Services {
	slog.Debug("Initializing services", "max_games", cfg.MaxGames)

	return &Services{
		Games: game.NewRegistry(cfg.MaxGames),
	}
}
