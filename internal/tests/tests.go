package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/stretchr/testify/require"
)

const TestToken = "test-token"

// NewConfig returns a config for an app that is only used through app.Test.
func NewConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost: "localhost",
		ServerPort: "0",
		MaxGames:   10,
	}
}

// NewApp creates an app for cfg, or for NewConfig if cfg is nil.
func NewApp(cfg *config.ServerConfig) *fiber.App {
	if cfg == nil {
		cfg = NewConfig()
	}
	return internal.NewApp(cfg)
}

// Do sends a request to app. If payload is not nil it is sent as JSON body.
// If response is not nil, the body is decoded into it.
func Do(t *testing.T, app *fiber.App, method, path string, payload any, response any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
		body = &buf
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("x-token", TestToken)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() {
		resp.Body.Close()
	})

	if response != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(response))
	}

	return resp
}
