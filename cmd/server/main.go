package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
)

func main() {
	envFile := flag.String("env", ".env", "file with environment variables, ignored if it does not exist")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		slog.Error("Failed to load env file", "error", err)
		os.Exit(1)
	}

	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	log.Fatal(app.Listen(cfg.Address()))
}
