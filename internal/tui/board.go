// Package tui is a terminal client to play Othello against the computer or another human.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/othello"
)

const (
	// marginLeft is the width of the row labels.
	marginLeft = 3

	// marginTop is the height of the column labels.
	marginTop = 1

	// cellWidth is 2 characters per cell for a square appearance.
	cellWidth = 2
)

// BoardUI draws a game and forwards user input to it.
type BoardUI struct {
	Box *tview.Box

	game  *game.Game
	hint  *tview.TextView
	app   *tview.Application
	theme *config.Theme

	// selRow and selCol are the cursor, -1 if there is no cursor
	selRow int
	selCol int

	// thinking is set while the computer searches
	thinking bool

	// message is shown above the controls, for example after an illegal move
	message string

	// originX and originY are the screen coordinates of the board's top left label
	originX int
	originY int

	styles []tcell.Color
}

// NewBoardUI creates a board widget for g.
func NewBoardUI(app *tview.Application, theme *config.Theme, hint *tview.TextView, g *game.Game) *BoardUI {
	b := &BoardUI{
		Box:    tview.NewBox(),
		game:   g,
		hint:   hint,
		app:    app,
		selRow: -1,
		selCol: -1,
	}
	b.SetTheme(theme)

	b.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		b.draw(screen, x, y)
		return x, y, marginLeft + othello.Size*cellWidth, marginTop + othello.Size
	})

	b.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}

		row, col, ok := b.CellAt(event.Position())
		if !ok {
			return action, event
		}

		b.selRow, b.selCol = row, col
		b.PlayMove(row, col)
		return action, nil
	})

	b.refreshHint()
	return b
}

// SetTheme updates the colors and symbols.
func (b *BoardUI) SetTheme(theme *config.Theme) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(theme.Colors.Board),    // 0
		tcell.PaletteColor(theme.Colors.Black),    // 1
		tcell.PaletteColor(theme.Colors.White),    // 2
		tcell.PaletteColor(theme.Colors.Hint),     // 3
		tcell.PaletteColor(theme.Colors.CursorBG), // 4
		tcell.PaletteColor(theme.Colors.LastBG),   // 5
	}
	b.theme = theme
}

// Game returns the game shown on the board.
func (b *BoardUI) Game() *game.Game {
	return b.game
}

// SetGame replaces the game, for example when starting a new one.
func (b *BoardUI) SetGame(g *game.Game) {
	b.game = g
	b.message = ""
	b.thinking = false
	b.ResetSelection()
	b.refreshHint()
	b.startComputer()
}

// CellAt converts screen coordinates to a board square.
func (b *BoardUI) CellAt(screenX, screenY int) (int, int, bool) {
	dx := screenX - b.originX - marginLeft
	dy := screenY - b.originY - marginTop

	if dx < 0 || dy < 0 {
		return 0, 0, false
	}

	row, col := dy, dx/cellWidth
	if !othello.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// SelectedTile returns the cursor position.
func (b *BoardUI) SelectedTile() (othello.Move, bool) {
	if b.selRow == -1 && b.selCol == -1 {
		return othello.Move{}, false
	}
	return othello.Move{Row: b.selRow, Col: b.selCol}, true
}

// MoveSelection moves the cursor. The first call puts the cursor on the first legal move.
func (b *BoardUI) MoveSelection(dRow, dCol int) {
	if _, ok := b.SelectedTile(); !ok {
		b.selRow, b.selCol = 3, 3
		if moves := b.game.ValidMoves(); len(moves) > 0 {
			b.selRow, b.selCol = moves[0].Row, moves[0].Col
		}
		return
	}

	if !othello.InBounds(b.selRow+dRow, b.selCol+dCol) {
		return
	}

	b.selRow += dRow
	b.selCol += dCol
}

// ResetSelection removes the cursor.
func (b *BoardUI) ResetSelection() {
	b.selRow = -1
	b.selCol = -1
}

// PlaySelected plays on the cursor.
func (b *BoardUI) PlaySelected() {
	if move, ok := b.SelectedTile(); ok {
		b.PlayMove(move.Row, move.Col)
	}
}

// PlayMove plays a human move. Illegal moves are ignored apart from a message.
func (b *BoardUI) PlayMove(row, col int) {
	if b.thinking {
		return
	}

	move := othello.Move{Row: row, Col: col}
	if err := b.game.Play(move); err != nil {
		slog.Debug("move rejected", "move", move.String(), "error", err)
		b.message = fmt.Sprintf("%s is not possible: %v", move, err)
		b.refreshHint()
		return
	}

	b.message = ""
	b.refreshHint()
	b.startComputer()
}

// Pass passes if the side to move has no legal moves.
func (b *BoardUI) Pass() {
	if b.thinking {
		return
	}

	if err := b.game.Pass(); err != nil {
		b.message = fmt.Sprintf("cannot pass: %v", err)
	} else {
		b.message = ""
	}

	b.refreshHint()
	b.startComputer()
}

// Undo takes back the last human move.
func (b *BoardUI) Undo() {
	if b.thinking {
		return
	}

	if !b.game.Undo() {
		b.message = "nothing to undo"
		b.refreshHint()
		return
	}

	b.message = ""
	b.refreshHint()

	// Undoing the computer's first move gives the turn back to the computer.
	b.startComputer()
}

// startComputer lets the computer move in the background if it is its turn.
func (b *BoardUI) startComputer() {
	if !b.game.IsComputerTurn() {
		return
	}

	b.thinking = true
	b.refreshHint()

	g := b.game
	go func() {
		move, ok, err := g.PlayComputer()

		b.app.QueueUpdateDraw(func() {
			// The game may have been replaced while searching.
			if g != b.game {
				return
			}

			b.thinking = false
			switch {
			case err != nil:
				slog.Error("computer move failed", "error", err)
				b.message = fmt.Sprintf("computer failed: %v", err)
			case !ok:
				b.message = "computer passes"
			default:
				b.message = fmt.Sprintf("computer played %s", move)
			}
			b.refreshHint()

			// The human may have been forced to pass.
			b.startComputer()
		})
	}()
}

// lastMove returns the last placed disc, if any.
func (b *BoardUI) lastMove() (othello.Move, bool) {
	history := b.game.History()
	for i := len(history) - 1; i >= 0; i-- {
		if !history[i].Pass {
			return history[i].Move, true
		}
	}
	return othello.Move{}, false
}

func (b *BoardUI) draw(screen tcell.Screen, x, y int) {
	b.originX, b.originY = x, y

	state := b.game.State()
	last, hasLast := b.lastMove()

	hints := make(map[othello.Move]bool)
	if b.theme.ShowHints && !b.thinking {
		for _, m := range state.ValidMoves {
			hints[m] = true
		}
	}

	labelStyle := tcell.StyleDefault
	for col := 0; col < othello.Size; col++ {
		screen.SetContent(x+marginLeft+col*cellWidth, y, rune('a'+col), nil, labelStyle)
	}

	for row := 0; row < othello.Size; row++ {
		screen.SetContent(x, y+marginTop+row, rune('1'+row), nil, labelStyle)

		for col := 0; col < othello.Size; col++ {
			move := othello.Move{Row: row, Col: col}
			bg := b.styles[0]

			switch {
			case move.Row == b.selRow && move.Col == b.selCol:
				bg = b.styles[4]
			case hasLast && move == last:
				bg = b.styles[5]
			}

			r := b.theme.Symbols.Empty
			fg := b.styles[3]

			switch state.Board.At(row, col) {
			case othello.Black:
				r, fg = b.theme.Symbols.Disc, b.styles[1]
			case othello.White:
				r, fg = b.theme.Symbols.Disc, b.styles[2]
			default:
				if hints[move] {
					r = b.theme.Symbols.Hint
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			left := x + marginLeft + col*cellWidth
			screen.SetContent(left, y+marginTop+row, r, nil, style)
			screen.SetContent(left+1, y+marginTop+row, ' ', nil, style)
		}
	}
}

func (b *BoardUI) refreshHint() {
	b.hint.SetText(b.statusText())
}

// statusText describes the game state and the controls.
func (b *BoardUI) statusText() string {
	state := b.game.State()
	outcome := state.Outcome

	text := fmt.Sprintf("  ● Black %2d\n  ○ White %2d\n\n", outcome.Black, outcome.White)

	switch {
	case outcome.Over:
		switch outcome.Winner {
		case othello.Black:
			text += "  Game over: black wins\n"
		case othello.White:
			text += "  Game over: white wins\n"
		default:
			text += "  Game over: draw\n"
		}
	case b.thinking:
		text += "  ◌ Thinking...\n"
	case len(state.ValidMoves) == 0:
		text += fmt.Sprintf("  %s has no moves, press p to pass\n", state.Turn)
	default:
		text += fmt.Sprintf("  %s to move\n", state.Turn)
	}

	if b.message != "" {
		text += "  " + b.message + "\n"
	}

	text += `
  hjkl/↑↓←→ move   ⏎ play
  p pass   u undo   n new   q quit`

	return text
}
