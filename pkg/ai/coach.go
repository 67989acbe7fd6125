package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	aiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "codecoach",
		Subsystem: "ai",
		Name:      "generation_duration_seconds",
		Help:      "Duration of AI generation requests",
	}, []string{"operation"})

	// Call failures, parse failures and schema violations all degrade to the
	// same fallback value; the kind label keeps them distinguishable here.
	aiFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "codecoach",
		Subsystem: "ai",
		Name:      "fallbacks_total",
		Help:      "Number of AI generations that degraded to a fallback value",
	}, []string{"operation", "kind"})
)

const (
	fallbackKindCall   = "call"
	fallbackKindParse  = "parse"
	fallbackKindSchema = "schema"
)

const reportContract = "Return JSON with keys: summary (string), strengths (string[]), weaknesses (string[]), " +
	"suggested_fixes (array of {line_hint?: number, fix_snippet?: string, description: string}), " +
	"roadmap (array of EXACTLY 7 items with {day: number (1-7), task: string, est_hours: number} representing a " +
	"7-day learning path), recommendedProblems (array of {id: string, title: string, difficulty: string})."

// Config defines configuration options for the OpenAI-backed coach.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// OpenAICoach implements Coach against the OpenAI chat completion API. A
// coach built without an API key is valid and serves fixed illustrative
// content, which keeps development environments working without credentials.
type OpenAICoach struct {
	client *openai.Client
	cfg    Config
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewCoach builds a coach from the provided configuration.
func NewCoach(cfg Config) *OpenAICoach {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}

	coach := &OpenAICoach{
		cfg:    cfg,
		tracer: otel.Tracer("github.com/codecoach-dev/codecoach-api/pkg/ai"),
		logger: cfg.Logger.With().Str("component", "ai_coach").Logger(),
	}

	if cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		coach.client = openai.NewClientWithConfig(clientConfig)
	}

	return coach
}

func (c *OpenAICoach) configured() bool {
	return c != nil && c.client != nil
}

// Analyze reviews a submission together with its execution result and returns
// a structured coaching report. It never fails: an unconfigured backend yields
// the illustrative report, and a failed call or unusable response yields the
// unavailable report.
func (c *OpenAICoach) Analyze(ctx context.Context, input AnalysisInput) Report {
	if !c.configured() {
		return unconfiguredReport()
	}

	problem := input.ProblemTitle
	if problem == "" {
		problem = input.ProblemID
	}
	if problem == "" {
		problem = "N/A"
	}
	statement := input.ProblemStatement
	if statement == "" {
		statement = "N/A"
	}

	prompt := strings.Builder{}
	prompt.WriteString("Analyze the user's submission.\n")
	prompt.WriteString("Language: " + input.Language + "\n")
	prompt.WriteString("Problem: " + problem + "\n")
	prompt.WriteString("Statement: " + statement + "\n")
	prompt.WriteString("Source Code:\n\n" + input.Source + "\n\n")
	prompt.WriteString("Judge Output:\n" + input.ExecutionJSON + "\n\n")
	prompt.WriteString(reportContract + "\nRespond with ONLY JSON.")

	content, err := c.complete(ctx, "analyze", "You are an expert coding coach.", prompt.String())
	if err != nil {
		aiFallbacks.WithLabelValues("analyze", fallbackKindCall).Inc()
		c.logger.Warn().Err(err).Msg("analysis call failed, serving fallback report")
		return unavailableReport()
	}

	fragment, ok := extractObject(content)
	if !ok {
		aiFallbacks.WithLabelValues("analyze", fallbackKindParse).Inc()
		c.logger.Warn().Msg("no JSON object found in analysis response")
		return unavailableReport()
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(fragment), &decoded); err != nil {
		aiFallbacks.WithLabelValues("analyze", fallbackKindParse).Inc()
		c.logger.Warn().Err(err).Msg("analysis response is not valid JSON")
		return unavailableReport()
	}

	if !validateReport(decoded) {
		aiFallbacks.WithLabelValues("analyze", fallbackKindSchema).Inc()
		c.logger.Warn().Msg("analysis response violates the report schema")
		return unavailableReport()
	}

	var report Report
	if err := json.Unmarshal([]byte(fragment), &report); err != nil {
		aiFallbacks.WithLabelValues("analyze", fallbackKindParse).Inc()
		return unavailableReport()
	}

	return report
}

// GenerateTips produces quick feedback on code without running it.
func (c *OpenAICoach) GenerateTips(ctx context.Context, language, source, problemTitle string) TipsReport {
	if !c.configured() {
		return fallbackTips()
	}

	if problemTitle == "" {
		problemTitle = "N/A"
	}

	prompt := fmt.Sprintf(
		"Provide tips for this %s code:\n\n%s\n\nProblem: %s\n\n"+
			"Provide a JSON response with: {summary: string, strengths: string[], weaknesses: string[], suggested_fixes: {description: string}[]}",
		language, source, problemTitle,
	)

	content, err := c.complete(ctx, "tips", "You are a coding coach.", prompt)
	if err != nil {
		aiFallbacks.WithLabelValues("tips", fallbackKindCall).Inc()
		return fallbackTips()
	}

	var tips TipsReport
	if !decodeObject(content, &tips) || tips.Summary == "" {
		aiFallbacks.WithLabelValues("tips", fallbackKindParse).Inc()
		return fallbackTips()
	}

	return tips
}

// GenerateQuiz produces one multiple-choice question about the language,
// optionally scoped to a topic.
func (c *OpenAICoach) GenerateQuiz(ctx context.Context, language, topic string) QuizQuestion {
	if !c.configured() {
		return fallbackQuiz()
	}

	prompt := fmt.Sprintf("Generate a quiz question about %s", language)
	if topic != "" {
		prompt += fmt.Sprintf(" focusing on %s", topic)
	}
	prompt += ".\nReturn a JSON with: {question: string, options: string[], answer: number, explanation: string}"

	content, err := c.complete(ctx, "quiz", "You are a coding coach.", prompt)
	if err != nil {
		aiFallbacks.WithLabelValues("quiz", fallbackKindCall).Inc()
		return fallbackQuiz()
	}

	var quiz QuizQuestion
	if !decodeObject(content, &quiz) || quiz.Question == "" || len(quiz.Options) == 0 {
		aiFallbacks.WithLabelValues("quiz", fallbackKindParse).Inc()
		return fallbackQuiz()
	}

	return quiz
}

// GenerateRoadmap produces a 7-day learning path for the language at the
// given skill level.
func (c *OpenAICoach) GenerateRoadmap(ctx context.Context, language, skillLevel string) []RoadmapItem {
	if !c.configured() {
		return fallbackRoadmap(language)
	}

	prompt := fmt.Sprintf(
		"Create a 7-day learning roadmap for %s at %s level.\nReturn a JSON array of {day: number, task: string, est_hours: number}",
		language, skillLevel,
	)

	content, err := c.complete(ctx, "roadmap", "You are a coding coach.", prompt)
	if err != nil {
		aiFallbacks.WithLabelValues("roadmap", fallbackKindCall).Inc()
		return fallbackRoadmap(language)
	}

	fragment, ok := extractArray(content)
	if !ok {
		aiFallbacks.WithLabelValues("roadmap", fallbackKindParse).Inc()
		return fallbackRoadmap(language)
	}

	var items []RoadmapItem
	if err := json.Unmarshal([]byte(fragment), &items); err != nil || len(items) != 7 {
		aiFallbacks.WithLabelValues("roadmap", fallbackKindParse).Inc()
		return fallbackRoadmap(language)
	}

	return items
}

func (c *OpenAICoach) complete(parent context.Context, operation, system, user string) (string, error) {
	ctx, span := c.tracer.Start(parent, "ai."+operation, trace.WithAttributes(
		attribute.String("model", c.cfg.Model),
	))
	defer span.End()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	aiDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("ai %s: %w", operation, err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no choices returned from ai backend")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// extractObject returns the substring spanning the first "{" to the last "}".
// This tolerates the model wrapping its JSON in prose or markdown fences.
func extractObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// extractArray returns the substring spanning the first "[" to the last "]".
func extractArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func decodeObject(text string, target interface{}) bool {
	fragment, ok := extractObject(text)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(fragment), target) == nil
}
