package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/othello"
)

// App is the terminal client.
type App struct {
	app   *tview.Application
	board *BoardUI
	hint  *tview.TextView

	// computer is the color of the computer in new games
	computer othello.Player
}

// NewApp creates the terminal client. computer is othello.Empty for a game between two humans.
func NewApp(theme *config.Theme, computer othello.Player) *App {
	app := tview.NewApplication()
	app.EnableMouse(true)

	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	a := &App{
		app:      app,
		hint:     hint,
		computer: computer,
	}

	a.board = NewBoardUI(app, theme, hint, game.New(computer))
	a.board.Box.SetBorder(true).SetTitle(" reversi ")
	a.board.Box.SetInputCapture(a.handleKey)

	layout := tview.NewFlex().SetDirection(tview.FlexColumn)
	layout.AddItem(a.board.Box, 2*(marginLeft+othello.Size*cellWidth), 0, true)
	layout.AddItem(hint, 0, 1, false)

	app.SetRoot(layout, true)
	return a
}

// Run starts the event loop. It returns when the user quits.
func (a *App) Run() error {
	// The computer may have the first move.
	a.board.startComputer()
	return a.app.Run()
}

// NewGame replaces the current game.
func (a *App) NewGame() {
	a.board.SetGame(game.New(a.computer))
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		a.board.MoveSelection(-1, 0)
	case tcell.KeyDown:
		a.board.MoveSelection(1, 0)
	case tcell.KeyLeft:
		a.board.MoveSelection(0, -1)
	case tcell.KeyRight:
		a.board.MoveSelection(0, 1)
	case tcell.KeyEnter:
		a.board.PlaySelected()
	case tcell.KeyEsc:
		a.board.ResetSelection()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			a.board.MoveSelection(0, -1)
		case 'j':
			a.board.MoveSelection(1, 0)
		case 'k':
			a.board.MoveSelection(-1, 0)
		case 'l':
			a.board.MoveSelection(0, 1)
		case ' ':
			a.board.PlaySelected()
		case 'p':
			a.board.Pass()
		case 'u':
			a.board.Undo()
		case 'n':
			a.NewGame()
		case 'q':
			a.app.Stop()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}
