package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/internal/handler"
	"github.com/codecoach-dev/codecoach-api/internal/models"
	"github.com/codecoach-dev/codecoach-api/internal/service"
)

type stubProblemService struct {
	response dto.ProblemListResponse
	lastQ    service.ProblemQuery
}

func (s *stubProblemService) List(_ context.Context, query service.ProblemQuery) dto.ProblemListResponse {
	s.lastQ = query
	return s.response
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProblemHandler_QueryPassthrough(t *testing.T) {
	svc := &stubProblemService{response: dto.ProblemListResponse{Page: 2, PageSize: 5}}

	app := fiber.New()
	app.Get("/api/v1/problems", handler.NewProblemHandler(svc, zerolog.Nop()).List)

	resp := getPath(t, app, "/api/v1/problems?difficulty=Easy&tag=arrays&page=2&pageSize=5")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.Equal(t, "Easy", svc.lastQ.Difficulty)
	require.Equal(t, "arrays", svc.lastQ.Tag)
	require.Equal(t, 2, svc.lastQ.Page)
	require.Equal(t, 5, svc.lastQ.PageSize)
}

func TestProblemHandler_InvalidPage(t *testing.T) {
	svc := &stubProblemService{}

	app := fiber.New()
	app.Get("/api/v1/problems", handler.NewProblemHandler(svc, zerolog.Nop()).List)

	resp := getPath(t, app, "/api/v1/problems?page=abc")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// The real service serves the embedded catalog when no database is wired.
func TestProblemHandler_CatalogFiltering(t *testing.T) {
	svc := service.NewProblemService(nil, zerolog.Nop())

	app := fiber.New()
	app.Get("/api/v1/problems", handler.NewProblemHandler(svc, zerolog.Nop()).List)

	resp := getPath(t, app, "/api/v1/problems?difficulty=Easy&pageSize=2")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data dto.ProblemListResponse
	success, _ := decodeEnvelope(t, resp, &data)
	require.True(t, success)
	require.Len(t, data.Items, 2)
	for _, item := range data.Items {
		require.Equal(t, models.ProblemDifficultyEasy, item.Difficulty)
	}
	require.Equal(t, 1, data.Page)
	require.Equal(t, 2, data.PageSize)
}
