package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"
)

var themeFile = "reversi/config.json"

// InvalidTheme is returned when a theme file contains unusable values.
type InvalidTheme struct {
	err string
}

func (e *InvalidTheme) Error() string {
	return fmt.Sprintf("theme error: %s", e.err)
}

// ThemeColors are xterm-256 color indices.
type ThemeColors struct {
	Board    int `json:"board"`
	Black    int `json:"black"`
	White    int `json:"white"`
	Hint     int `json:"hint"`
	CursorBG int `json:"cursor_bg"`
	LastBG   int `json:"last_played_bg"`
}

// ThemeSymbols are the runes drawn on the board.
type ThemeSymbols struct {
	Disc  rune `json:"disc"`
	Empty rune `json:"empty"`
	Hint  rune `json:"hint"`
}

// Theme controls how the terminal client draws the board.
type Theme struct {
	ShowHints bool         `json:"show_hints"`
	Colors    ThemeColors  `json:"colors"`
	Symbols   ThemeSymbols `json:"symbols"`
}

// DefaultTheme is used when no theme file is found.
var DefaultTheme = Theme{
	ShowHints: true,
	Colors: ThemeColors{
		Board:    28,
		Black:    232,
		White:    255,
		Hint:     22,
		CursorBG: 94,
		LastBG:   100,
	},
	Symbols: ThemeSymbols{
		Disc:  '●',
		Empty: '·',
		Hint:  '∘',
	},
}

// LoadTheme reads the theme from the XDG config directories, falling back to DefaultTheme.
func LoadTheme() (*Theme, error) {
	theme := DefaultTheme

	path, err := xdg.SearchConfigFile(themeFile)
	if err != nil {
		return &theme, nil
	}

	if err = readThemeFile(path, &theme); err != nil {
		return nil, err
	}

	if err = theme.Validate(); err != nil {
		return nil, err
	}
	return &theme, nil
}

// Validate checks colors and symbols.
func (t *Theme) Validate() error {
	for _, r := range []rune{t.Symbols.Disc, t.Symbols.Empty, t.Symbols.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidTheme{"unicode characters 0-31 and 127-159 are not allowed"}
		}
	}

	colors := []int{t.Colors.Board, t.Colors.Black, t.Colors.White, t.Colors.Hint, t.Colors.CursorBG, t.Colors.LastBG}
	for _, c := range colors {
		if c < 0 || c > 255 {
			return &InvalidTheme{fmt.Sprintf("color %d is out of range 0-255", c)}
		}
	}
	return nil
}

// Save writes the theme to the user's XDG config directory.
func (t *Theme) Save() (string, error) {
	path, err := xdg.ConfigFile(themeFile)
	if err != nil {
		return "", fmt.Errorf("failed to find config path: %w", err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal theme: %w", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write theme: %w", err)
	}
	return path, nil
}

func readThemeFile(path string, theme *Theme) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme: %w", err)
	}

	if err = json.Unmarshal(data, theme); err != nil {
		return fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return nil
}
