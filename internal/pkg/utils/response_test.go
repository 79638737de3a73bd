package utils_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paris-green-explorer/internal/pkg/errors"
	"github.com/paris-green-explorer/internal/pkg/utils"
)

func call(t *testing.T, h fiber.Handler) (*http.Response, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func TestSendSuccess_SourceHeader(t *testing.T) {
	resp, body := call(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, []string{"a"}, &utils.Meta{Total: 1, Source: "cache"})
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cache", resp.Header.Get(utils.HeaderDataSource))
	assert.Equal(t, []any{"a"}, body["data"])

	resp, _ = call(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, nil, nil)
	})
	assert.Empty(t, resp.Header.Get(utils.HeaderDataSource))
}

func TestSendCreated(t *testing.T) {
	resp, body := call(t, func(c *fiber.Ctx) error {
		return utils.SendCreated(c, map[string]string{"session_id": "s1"})
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotContains(t, body, "meta")
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "app error", err: errors.ErrSessionNotFound, status: http.StatusNotFound, code: "SESSION_NOT_FOUND"},
		{name: "wrapped app error", err: fmt.Errorf("lookup: %w", errors.ErrSessionNotFound), status: http.StatusNotFound, code: "SESSION_NOT_FOUND"},
		{name: "plain error", err: fmt.Errorf("boom"), status: http.StatusInternalServerError, code: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := call(t, func(c *fiber.Ctx) error {
				return utils.SendError(c, tt.err)
			})

			assert.Equal(t, tt.status, resp.StatusCode)
			errBody, ok := body["error"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.code, errBody["code"])
		})
	}
}
