package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/search"
)

func main() {
	boardString := flag.String("board", othello.InitialBoard().String(), "the board to show, 64 squares of x, o or -")
	turnString := flag.String("turn", "black", "the side to move")
	moves := flag.String("moves", "", "moves to play first, for example \"d3 c5 f6\"")
	depth := flag.Int("depth", search.ComputerDepth, "search depth for the suggested move")
	flag.Parse()

	board, err := othello.ParseBoard(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	turn, err := othello.ParsePlayer(*turnString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	g := game.NewWithStart(board, turn, othello.Empty)
	for _, field := range strings.Fields(*moves) {
		move, err := othello.ParseMove(field)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if err = g.Play(move); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	state := g.State()
	state.Board.Print(state.Turn)

	outcome := state.Outcome
	fmt.Printf("black %d white %d, %s to move\n", outcome.Black, outcome.White, state.Turn)

	if outcome.Over {
		fmt.Println("game over")
		return
	}

	result := search.Evaluate(state.Board, *depth, state.Turn)
	if !result.HasMove {
		fmt.Printf("%s has to pass\n", state.Turn)
		return
	}
	fmt.Printf("best move at depth %d: %s (disc difference %+d)\n", *depth, result.Move, result.Value)
}
