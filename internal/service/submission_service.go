package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/internal/models"
	"github.com/codecoach-dev/codecoach-api/internal/observability"
	"github.com/codecoach-dev/codecoach-api/internal/repository"
	"github.com/codecoach-dev/codecoach-api/pkg/ai"
	"github.com/codecoach-dev/codecoach-api/pkg/judge"
)

// SubmissionService orchestrates one submission run: execute, analyze, and
// best-effort persistence for authenticated callers.
type SubmissionService interface {
	Submit(ctx context.Context, userID uint, payload dto.SubmissionRequest) (dto.SubmissionResponse, error)
}

type submissionService struct {
	// submissions is nil when no database is configured; persistence is then
	// skipped silently.
	submissions repository.SubmissionRepository
	runner      judge.Runner
	coach       ai.Coach
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewSubmissionService constructs the submission orchestrator.
func NewSubmissionService(submissions repository.SubmissionRepository, runner judge.Runner, coach ai.Coach, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissions,
		runner:      runner,
		coach:       coach,
		validator:   validate,
		logger:      logger.With().Str("component", "submission_service").Logger(),
	}
}

// Submit runs the orchestration flow. Only validation failures surface as
// errors; execution, analysis, and persistence all degrade gracefully.
func (s *submissionService) Submit(ctx context.Context, userID uint, payload dto.SubmissionRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	result := s.runner.Execute(ctx, payload.Language, payload.SourceCode, payload.Stdin)

	input := ai.AnalysisInput{
		Language:      payload.Language,
		ProblemID:     payload.ProblemID,
		Source:        payload.SourceCode,
		ExecutionJSON: marshalIndent(result),
	}
	if payload.Problem != nil {
		if payload.Problem.ID != "" {
			input.ProblemID = payload.Problem.ID
		}
		input.ProblemTitle = payload.Problem.Title
		input.ProblemStatement = payload.Problem.Statement
	}

	report := s.coach.Analyze(ctx, input)

	if userID != 0 {
		s.persist(ctx, userID, payload, result, report)
	}

	return dto.SubmissionResponse{JudgeResult: result, AIReport: report}, nil
}

// persist stores the run for an authenticated caller. Failures are logged and
// counted but never surface: the response is an enrichment, not the user's
// primary data.
func (s *submissionService) persist(ctx context.Context, userID uint, payload dto.SubmissionRequest, result judge.Result, report ai.Report) {
	if s.submissions == nil {
		observability.PersistenceSkips().WithLabelValues("submission", "unconfigured").Inc()
		return
	}

	problemID := payload.ProblemID
	if payload.Problem != nil && payload.Problem.ID != "" {
		problemID = payload.Problem.ID
	}

	submission := models.Submission{
		UserID:      userID,
		ProblemID:   problemID,
		Language:    payload.Language,
		Source:      payload.SourceCode,
		Stdin:       payload.Stdin,
		JudgeResult: toJSONMap(result),
		AIReport:    toJSONMap(report),
	}

	if err := s.submissions.Create(ctx, &submission); err != nil {
		observability.PersistenceSkips().WithLabelValues("submission", "write_failed").Inc()
		s.logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to save submission")
	}
}

func toJSONMap(value interface{}) datatypes.JSONMap {
	payload, err := json.Marshal(value)
	if err != nil {
		return datatypes.JSONMap{}
	}

	result := datatypes.JSONMap{}
	if err := json.Unmarshal(payload, &result); err != nil {
		return datatypes.JSONMap{}
	}

	return result
}

func marshalIndent(value interface{}) string {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(payload)
}
