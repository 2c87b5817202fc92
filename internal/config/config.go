package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultMaxGames = 1000
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost string
	ServerPort string

	// StaticDir optionally points to a browser client. Static routes are disabled if empty.
	StaticDir string

	// MaxGames limits the number of games kept in memory.
	MaxGames int

	// Token is required in the x-token header of API requests if set.
	Token string
}

// LoadDotEnv adds the variables in the env file at path to the environment. Variables that
// are already set are not overwritten. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	slog.Debug("Loaded env file", "path", path)
	return nil
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost: getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort: getEnvMust("REVERSI_SERVER_PORT"),
		StaticDir:  os.Getenv("REVERSI_STATIC_DIR"),
		MaxGames:   getEnvInt("REVERSI_MAX_GAMES", defaultMaxGames),
		Token:      os.Getenv("REVERSI_SERVER_TOKEN"),
	}
}

// Address returns the address the server listens on.
func (cfg *ServerConfig) Address() string {
	return cfg.ServerHost + ":" + cfg.ServerPort
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

// getEnvInt returns the environment variable as int, or fallback if it is not set.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		slog.Error("Cannot load environment variable, it must be a non-negative integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
