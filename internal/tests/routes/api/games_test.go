package api_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGame(t *testing.T, app *fiber.App, computer string) models.GameResponse {
	t.Helper()

	var created models.GameResponse
	resp := tests.Do(t, app, http.MethodPost, "/api/games", models.NewGamePayload{Computer: computer}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return created
}

func getGame(t *testing.T, app *fiber.App, id string) models.GameResponse {
	t.Helper()

	var state models.GameResponse
	resp := tests.Do(t, app, http.MethodGet, "/api/games/"+id, nil, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return state
}

func TestCreateGame(t *testing.T) {
	app := tests.NewApp(nil)

	created := createGame(t, app, "white")

	_, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	require.Equal(t, []string{
		"--------",
		"--------",
		"--------",
		"---ox---",
		"---xo---",
		"--------",
		"--------",
		"--------",
	}, created.Board)
	require.Equal(t, "black", created.Turn)
	require.Equal(t, "white", created.Computer)
	require.Equal(t, []string{"d3", "c4", "f5", "e6"}, created.ValidMoves)
	require.Equal(t, 2, created.Black)
	require.Equal(t, 2, created.White)
	require.False(t, created.Over)
	require.Empty(t, created.Winner)
	require.Empty(t, created.History)

	require.Equal(t, created, getGame(t, app, created.ID))
}

func TestCreateGameInvalid(t *testing.T) {
	app := tests.NewApp(nil)

	resp := tests.Do(t, app, http.MethodPost, "/api/games", models.NewGamePayload{Computer: "red"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateGameEmptyBody(t *testing.T) {
	app := tests.NewApp(nil)

	var created models.GameResponse
	resp := tests.Do(t, app, http.MethodPost, "/api/games", nil, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Empty(t, created.Computer)
}

func TestCreateGameRegistryFull(t *testing.T) {
	cfg := tests.NewConfig()
	cfg.MaxGames = 1
	app := tests.NewApp(cfg)

	resp := tests.Do(t, app, http.MethodPost, "/api/games", nil, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodPost, "/api/games", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGameNotFound(t *testing.T) {
	app := tests.NewApp(nil)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/games/" + uuid.New().String()},
		{http.MethodGet, "/api/games/not-a-uuid"},
		{http.MethodDelete, "/api/games/" + uuid.New().String()},
		{http.MethodPost, "/api/games/" + uuid.New().String() + "/pass"},
		{http.MethodPost, "/api/games/" + uuid.New().String() + "/computer"},
		{http.MethodPost, "/api/games/" + uuid.New().String() + "/undo"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			resp := tests.Do(t, app, p.method, p.path, nil, nil)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestPlayMove(t *testing.T) {
	app := tests.NewApp(nil)

	created := createGame(t, app, "")
	path := "/api/games/" + created.ID + "/moves"

	cases := []struct {
		name           string
		move           string
		wantStatusCode int
	}{
		{"empty", "", http.StatusBadRequest},
		{"bad notation", "k9", http.StatusBadRequest},
		{"illegal", "a1", http.StatusConflict},
		{"occupied", "d4", http.StatusConflict},
		{"legal", "d3", http.StatusOK},
		{"same move again", "d3", http.StatusConflict},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var response map[string]any
			resp := tests.Do(t, app, http.MethodPost, path, models.MovePayload{Move: tt.move}, &response)
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			if tt.wantStatusCode != http.StatusOK {
				assert.NotEmpty(t, response["error"])
			}
		})
	}

	state := getGame(t, app, created.ID)
	require.Equal(t, "white", state.Turn)
	require.Equal(t, 4, state.Black)
	require.Equal(t, 1, state.White)
	require.Equal(t, []string{"d3"}, state.History)
	require.Equal(t, []string{"c3", "e3", "c5"}, state.ValidMoves)
}

func TestPlayMoveInvalidBody(t *testing.T) {
	app := tests.NewApp(nil)

	created := createGame(t, app, "")

	resp := tests.Do(t, app, http.MethodPost, "/api/games/"+created.ID+"/moves", []int{1, 2}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestComputerMove(t *testing.T) {
	app := tests.NewApp(nil)

	created := createGame(t, app, "white")
	id := created.ID

	// It is not the computer's turn yet.
	resp := tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/computer", nil, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/moves", models.MovePayload{Move: "d3"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The human cannot move for the computer.
	resp = tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/moves", models.MovePayload{Move: "c3"}, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var computer models.ComputerMoveResponse
	resp = tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/computer", nil, &computer)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.False(t, computer.Passed)
	require.Contains(t, []string{"c3", "e3", "c5"}, computer.Move)
	require.Equal(t, "black", computer.Game.Turn)
	require.Equal(t, []string{"d3", computer.Move}, computer.Game.History)
	require.Equal(t, computer.Game, getGame(t, app, id))
}

func TestPassNotAllowed(t *testing.T) {
	app := tests.NewApp(nil)

	created := createGame(t, app, "")

	var response map[string]any
	resp := tests.Do(t, app, http.MethodPost, "/api/games/"+created.ID+"/pass", nil, &response)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotEmpty(t, response["error"])
}

func TestUndo(t *testing.T) {
	app := tests.NewApp(nil)

	created := createGame(t, app, "")
	id := created.ID

	for _, move := range []string{"d3", "c3"} {
		resp := tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/moves", models.MovePayload{Move: move}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var state models.GameResponse
	resp := tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/undo", nil, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{"d3"}, state.History)
	require.Equal(t, "white", state.Turn)

	resp = tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/undo", nil, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, created.Board, state.Board)
	require.Empty(t, state.History)

	// Nothing left to undo.
	resp = tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/undo", nil, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "black", state.Turn)
}

func TestDeleteGame(t *testing.T) {
	app := tests.NewApp(nil)

	created := createGame(t, app, "")

	resp := tests.Do(t, app, http.MethodDelete, "/api/games/"+created.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodGet, "/api/games/"+created.ID, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTokenRequired(t *testing.T) {
	cfg := tests.NewConfig()
	cfg.Token = tests.TestToken
	app := tests.NewApp(cfg)

	req, err := http.NewRequest(http.MethodPost, "/api/games", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// tests.Do sends the token
	resp2 := tests.Do(t, app, http.MethodPost, "/api/games", nil, nil)
	require.Equal(t, http.StatusCreated, resp2.StatusCode)
}
