package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/codecoach-dev/codecoach-api/internal/handler"
)

func TestHealthHandler_ReportsServiceModes(t *testing.T) {
	app := fiber.New()
	app.Get("/health", handler.NewHealthHandler("CodeCoach API", "test", true, false, false, true).Check)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			App      string            `json:"app"`
			Status   string            `json:"status"`
			Services map[string]string `json:"services"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.True(t, payload.Success)
	require.Equal(t, "healthy", payload.Data.Status)
	require.Equal(t, "live", payload.Data.Services["judge"])
	require.Equal(t, "degraded", payload.Data.Services["ai"])
	require.Equal(t, "degraded", payload.Data.Services["database"])
	require.Equal(t, "live", payload.Data.Services["cache"])
}
