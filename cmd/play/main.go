package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/tui"
)

func main() {
	color := flag.String("color", "black", "the color you play (black or white)")
	hotSeat := flag.Bool("hotseat", false, "play against another human instead of the computer")
	saveTheme := flag.Bool("save-theme", false, "write the current theme to the config directory for editing and exit")
	flag.Parse()

	config.SetLogLevel()

	human, err := othello.ParsePlayer(*color)
	if err != nil {
		slog.Error("Invalid color", "error", err)
		os.Exit(1)
	}

	computer := othello.Opponent(human)
	if *hotSeat {
		computer = othello.Empty
	}

	theme, err := config.LoadTheme()
	if err != nil {
		slog.Error("Failed to load theme", "error", err)
		os.Exit(1)
	}

	if *saveTheme {
		path, err := theme.Save()
		if err != nil {
			slog.Error("Failed to save theme", "error", err)
			os.Exit(1)
		}
		slog.Info("Saved theme", "path", path)
		return
	}

	if err = tui.NewApp(theme, computer).Run(); err != nil {
		slog.Error("Terminal client failed", "error", err)
		os.Exit(1)
	}
}
