package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/internal/handler"
	"github.com/codecoach-dev/codecoach-api/internal/service"
	"github.com/codecoach-dev/codecoach-api/pkg/ai"
	"github.com/codecoach-dev/codecoach-api/pkg/judge"
)

type stubSubmissionService struct {
	response dto.SubmissionResponse
	err      error
	calls    int
	lastID   uint
	lastReq  dto.SubmissionRequest
}

func (s *stubSubmissionService) Submit(_ context.Context, userID uint, payload dto.SubmissionRequest) (dto.SubmissionResponse, error) {
	s.calls++
	s.lastID = userID
	s.lastReq = payload
	if s.err != nil {
		return dto.SubmissionResponse{}, s.err
	}
	return s.response, nil
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response, data interface{}) (bool, string) {
	t.Helper()
	var payload struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()
	if data != nil && len(payload.Data) > 0 {
		require.NoError(t, json.Unmarshal(payload.Data, data))
	}
	return payload.Success, payload.Message
}

func TestSubmissionHandler_Success(t *testing.T) {
	svc := &stubSubmissionService{response: dto.SubmissionResponse{
		JudgeResult: judge.Result{StatusID: judge.StatusAccepted, StatusDescription: "Accepted", Stdout: "42\n"},
		AIReport:    ai.Report{Summary: "Looks good"},
	}}

	app := fiber.New()
	app.Post("/api/v1/submissions", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		return c.Next()
	}, handler.NewSubmissionHandler(svc, zerolog.Nop()).Submit)

	resp := postJSON(t, app, "/api/v1/submissions", `{"language":"python","sourceCode":"print(42)"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data dto.SubmissionResponse
	success, _ := decodeEnvelope(t, resp, &data)
	require.True(t, success)
	require.Equal(t, judge.StatusAccepted, data.JudgeResult.StatusID)
	require.Equal(t, "Looks good", data.AIReport.Summary)
	require.Equal(t, uint(7), svc.lastID)
	require.Equal(t, "python", svc.lastReq.Language)
}

func TestSubmissionHandler_AnonymousAllowed(t *testing.T) {
	svc := &stubSubmissionService{}

	app := fiber.New()
	app.Post("/api/v1/submissions", handler.NewSubmissionHandler(svc, zerolog.Nop()).Submit)

	resp := postJSON(t, app, "/api/v1/submissions", `{"language":"python","sourceCode":"print(1)"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(0), svc.lastID)
	require.Equal(t, 1, svc.calls)
	resp.Body.Close()
}

func TestSubmissionHandler_ValidationError(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := service.NewSubmissionService(nil, stubRunner{}, stubCoach{}, validate, zerolog.Nop())

	app := fiber.New()
	app.Post("/api/v1/submissions", handler.NewSubmissionHandler(svc, zerolog.Nop()).Submit)

	resp := postJSON(t, app, "/api/v1/submissions", `{"language":"python"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Success bool              `json:"success"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()
	require.False(t, payload.Success)
	require.Contains(t, payload.Details, "SourceCode")
}

func TestSubmissionHandler_MalformedBody(t *testing.T) {
	svc := &stubSubmissionService{}

	app := fiber.New()
	app.Post("/api/v1/submissions", handler.NewSubmissionHandler(svc, zerolog.Nop()).Submit)

	resp := postJSON(t, app, "/api/v1/submissions", `{"language":`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, 0, svc.calls)
	resp.Body.Close()
}

// End-to-end over the real service: no judge backend and no AI key still
// answer 200 with a mock result and the static fallback report.
func TestSubmissionHandler_DegradedPipeline(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	runner := judge.New(judge.Config{Logger: zerolog.Nop()})
	coach := ai.NewCoach(ai.Config{Logger: zerolog.Nop()})
	svc := service.NewSubmissionService(nil, runner, coach, validate, zerolog.Nop())

	app := fiber.New()
	app.Post("/api/v1/submissions", handler.NewSubmissionHandler(svc, zerolog.Nop()).Submit)

	resp := postJSON(t, app, "/api/v1/submissions", `{"language":"python","sourceCode":"print(42)","stdin":""}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data dto.SubmissionResponse
	success, _ := decodeEnvelope(t, resp, &data)
	require.True(t, success)
	require.True(t, data.JudgeResult.Mocked)
	require.Equal(t, judge.StatusAccepted, data.JudgeResult.StatusID)
	require.NotEmpty(t, data.AIReport.Summary)
	require.Len(t, data.AIReport.Roadmap, 7)
}
