package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	judgeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "codecoach",
		Subsystem: "judge",
		Name:      "execution_duration_seconds",
		Help:      "Duration of execution backend requests",
	}, []string{"language"})

	judgeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "codecoach",
		Subsystem: "judge",
		Name:      "execution_failures_total",
		Help:      "Number of execution backend failures",
	}, []string{"language"})
)

// languageIDs maps the editor language names to Judge0 language identifiers.
var languageIDs = map[string]int{
	"python":     71,
	"python3":    71,
	"javascript": 63,
	"node":       63,
	"cpp":        54,
	"c++":        54,
	"java":       62,
}

// Config defines configuration options for the Judge0 client.
type Config struct {
	BaseURL string
	APIKey  string
	Logger  zerolog.Logger
}

// Client submits source code to a Judge0-compatible execution backend and
// waits synchronously for the run to complete. When no backend is configured,
// or a failure occurs, Execute degrades to a well-formed Result instead of
// returning an error.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

// New builds a Judge0 client. An empty BaseURL yields a client that always
// returns the mock result, which keeps development environments working
// without credentials.
func New(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{},
		logger: cfg.Logger.With().Str("component", "judge_client").Logger(),
	}
}

type submissionRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type submissionResponse struct {
	Status *struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
	Stdout        *string     `json:"stdout"`
	Stderr        *string     `json:"stderr"`
	CompileOutput *string     `json:"compile_output"`
	Time          *string     `json:"time"`
	Memory        json.Number `json:"memory"`
}

// Execute runs the submitted code to completion on the backend. The returned
// Result is always well formed; transport and decode failures are folded into
// a sentinel "Judge0 Error" result with the message in Stderr.
func (c *Client) Execute(ctx context.Context, language, source, stdin string) Result {
	langID, supported := languageIDs[strings.ToLower(strings.TrimSpace(language))]
	if c.cfg.BaseURL == "" || !supported {
		return mockResult()
	}

	start := time.Now()
	result, err := c.submit(ctx, langID, source, stdin)
	judgeDuration.WithLabelValues(language).Observe(time.Since(start).Seconds())
	if err != nil {
		judgeFailures.WithLabelValues(language).Inc()
		c.logger.Warn().Err(err).Str("language", language).Msg("execution backend call failed")
		return Result{
			StatusID:          StatusErrored,
			StatusDescription: "Judge0 Error",
			Stderr:            err.Error(),
		}
	}

	return result
}

func (c *Client) submit(ctx context.Context, langID int, source, stdin string) (Result, error) {
	payload, err := json.Marshal(submissionRequest{
		SourceCode: source,
		LanguageID: langID,
		Stdin:      stdin,
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode submission: %w", err)
	}

	url := c.cfg.BaseURL + "/submissions?base64_encoded=false&wait=true&fields=stdout,stderr,status,compile_output,time,memory"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("execute submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("execution backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded submissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("decode submission response: %w", err)
	}

	return normalize(decoded), nil
}

func normalize(resp submissionResponse) Result {
	result := Result{
		Stdout:        stringValue(resp.Stdout),
		Stderr:        stringValue(resp.Stderr),
		CompileOutput: stringValue(resp.CompileOutput),
		Time:          stringValue(resp.Time),
	}

	if resp.Status != nil {
		result.StatusID = resp.Status.ID
		result.StatusDescription = resp.Status.Description
	}

	if memory, err := resp.Memory.Int64(); err == nil {
		result.MemoryKB = int(memory)
	} else if memory, err := resp.Memory.Float64(); err == nil {
		result.MemoryKB = int(memory)
	}

	return result
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func mockResult() Result {
	return Result{
		StatusID:          StatusAccepted,
		StatusDescription: "Accepted",
		Stdout:            "MOCK_OUTPUT",
		Time:              "0.01",
		MemoryKB:          1234,
		Mocked:            true,
	}
}
