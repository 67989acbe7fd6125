package judge_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/codecoach-dev/codecoach-api/pkg/judge"
)

func TestExecuteReturnsMockWithoutBackend(t *testing.T) {
	client := judge.New(judge.Config{Logger: zerolog.Nop()})

	result := client.Execute(context.Background(), "python", "print('hi')", "")
	require.True(t, result.Mocked)
	require.Equal(t, judge.StatusAccepted, result.StatusID)
	require.Equal(t, "Accepted", result.StatusDescription)
	require.Equal(t, "MOCK_OUTPUT", result.Stdout)
	require.Empty(t, result.Stderr)
}

func TestExecuteReturnsMockForUnsupportedLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called for unsupported languages")
	}))
	defer server.Close()

	client := judge.New(judge.Config{BaseURL: server.URL, Logger: zerolog.Nop()})
	result := client.Execute(context.Background(), "brainfuck", "++", "")
	require.True(t, result.Mocked)
}

func TestExecuteNormalizesBackendResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "secret", r.Header.Get("X-RapidAPI-Key"))
		require.Equal(t, "true", r.URL.Query().Get("wait"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, float64(71), body["language_id"])
		require.Equal(t, "print(input())", body["source_code"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": {"id": 3, "description": "Accepted"},
			"stdout": "42\n",
			"stderr": null,
			"compile_output": null,
			"time": "0.02",
			"memory": 2048
		}`))
	}))
	defer server.Close()

	client := judge.New(judge.Config{BaseURL: server.URL, APIKey: "secret", Logger: zerolog.Nop()})
	result := client.Execute(context.Background(), "python", "print(input())", "42")

	require.False(t, result.Mocked)
	require.Equal(t, judge.StatusAccepted, result.StatusID)
	require.Equal(t, "42\n", result.Stdout)
	require.Equal(t, "", result.Stderr)
	require.Equal(t, "", result.CompileOutput)
	require.Equal(t, "0.02", result.Time)
	require.Equal(t, 2048, result.MemoryKB)
}

func TestExecuteFoldsBackendErrorIntoSentinelResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := judge.New(judge.Config{BaseURL: server.URL, Logger: zerolog.Nop()})
	result := client.Execute(context.Background(), "javascript", "console.log(1)", "")

	require.Equal(t, judge.StatusErrored, result.StatusID)
	require.Equal(t, "Judge0 Error", result.StatusDescription)
	require.Contains(t, result.Stderr, "503")
}

func TestExecuteFoldsTransportErrorIntoSentinelResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := judge.New(judge.Config{BaseURL: server.URL, Logger: zerolog.Nop()})
	result := client.Execute(context.Background(), "java", "class Main {}", "")

	require.Equal(t, judge.StatusErrored, result.StatusID)
	require.NotEmpty(t, result.Stderr)
}
