package routes_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestRootEndpoint(t *testing.T) {
	cfg := tests.NewConfig()
	cfg.StaticDir = t.TempDir()
	app := tests.NewApp(cfg)

	resp := tests.Do(t, app, http.MethodGet, "/", nil, nil)

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/game", resp.Header.Get("Location"))
}

func TestNoStaticDir(t *testing.T) {
	app := tests.NewApp(nil)

	for _, path := range []string{"/", "/game", "/static/game.js"} {
		resp := tests.Do(t, app, http.MethodGet, path, nil, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestWebsocketRequiresUpgrade(t *testing.T) {
	app := tests.NewApp(nil)

	resp := tests.Do(t, app, http.MethodGet, "/ws", nil, nil)
	require.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	for _, file := range []string{"game.html", "game.js"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte("<!-- "+file+" -->"), 0o600))
	}

	cfg := tests.NewConfig()
	cfg.StaticDir = dir
	app := tests.NewApp(cfg)

	for _, path := range []string{"/game", "/static/game.html", "/static/game.js"} {
		t.Run(path, func(t *testing.T) {
			resp := tests.Do(t, app, http.MethodGet, path, nil, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}
