package ws

import (
	"encoding/json"
	"testing"

	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(nil, &services.Services{Games: game.NewRegistry(0)})
}

func request(t *testing.T, event string, id int, data any) *Incoming {
	t.Helper()

	req := &Incoming{Event: event, ID: id}
	if data != nil {
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		req.Data = raw
	}
	return req
}

func TestHandleMessage_GameFlow(t *testing.T) {
	h := newTestHandler()

	out, err := h.handleMessage(request(t, "new_game", 1, models.NewGamePayload{Computer: "white"}))
	require.NoError(t, err)
	require.Equal(t, 1, out.ID)

	created, ok := out.Data.(models.GameResponse)
	require.True(t, ok)
	require.Equal(t, "white", created.Computer)
	require.Equal(t, "black", created.Turn)

	out, err = h.handleMessage(request(t, "move", 2, MoveRequest{GameID: created.ID, Move: "d3"}))
	require.NoError(t, err)
	require.Equal(t, 2, out.ID)

	moved := out.Data.(models.GameResponse) //nolint: errcheck
	require.Equal(t, "white", moved.Turn)
	require.Equal(t, []string{"d3"}, moved.History)

	out, err = h.handleMessage(request(t, "computer_move", 3, GameRequest{GameID: created.ID}))
	require.NoError(t, err)

	computer := out.Data.(models.ComputerMoveResponse) //nolint: errcheck
	require.False(t, computer.Passed)
	require.Contains(t, moved.ValidMoves, computer.Move)
	require.Equal(t, "black", computer.Game.Turn)

	out, err = h.handleMessage(request(t, "undo", 4, GameRequest{GameID: created.ID}))
	require.NoError(t, err)
	require.Empty(t, out.Data.(models.GameResponse).History) //nolint: errcheck

	out, err = h.handleMessage(request(t, "state", 5, GameRequest{GameID: created.ID}))
	require.NoError(t, err)
	require.Equal(t, created.Board, out.Data.(models.GameResponse).Board) //nolint: errcheck
}

func TestHandleMessage_Errors(t *testing.T) {
	h := newTestHandler()

	g, err := h.services.Games.Create(othello.Empty)
	require.NoError(t, err)
	gameID := g.ID().String()

	tests := []struct {
		name    string
		req     *Incoming
		wantErr error
	}{
		{"no event", request(t, "", 1, nil), nil},
		{"unknown event", request(t, "resign", 1, nil), nil},
		{"missing data", request(t, "state", 1, nil), nil},
		{"unknown game", request(t, "state", 1, GameRequest{GameID: "nope"}), game.ErrNotFound},
		{"bad field", request(t, "move", 1, MoveRequest{GameID: gameID, Move: "k9"}), othello.ErrInvalidField},
		{"illegal move", request(t, "move", 1, MoveRequest{GameID: gameID, Move: "a1"}), othello.ErrInvalidMove},
		{"pass not allowed", request(t, "pass", 1, GameRequest{GameID: gameID}), game.ErrPassNotAllowed},
		{"no computer", request(t, "computer_move", 1, GameRequest{GameID: gameID}), game.ErrNotYourTurn},
		{"bad color", request(t, "new_game", 1, models.NewGamePayload{Computer: "red"}), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.handleMessage(tt.req)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHandleMessage_NewGameWithoutData(t *testing.T) {
	h := newTestHandler()

	out, err := h.handleMessage(request(t, "new_game", 7, nil))
	require.NoError(t, err)
	require.Equal(t, "", out.Data.(models.GameResponse).Computer) //nolint: errcheck
	require.Equal(t, 1, h.services.Games.Len())
}
