package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/pkg/ai"
)

// DefaultSkillLevel is assumed when a roadmap request omits the level.
const DefaultSkillLevel = "beginner"

// LearnService exposes the AI-backed generators that do not run code.
type LearnService interface {
	Tips(ctx context.Context, payload dto.TipsRequest) (ai.TipsReport, error)
	Quiz(ctx context.Context, payload dto.QuizRequest) (dto.QuizResponse, error)
	Roadmap(ctx context.Context, payload dto.RoadmapRequest) (dto.RoadmapResponse, error)
}

type learnService struct {
	coach     ai.Coach
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewLearnService constructs the learn content service.
func NewLearnService(coach ai.Coach, validate *validator.Validate, logger zerolog.Logger) LearnService {
	return &learnService{
		coach:     coach,
		validator: validate,
		logger:    logger.With().Str("component", "learn_service").Logger(),
	}
}

func (s *learnService) Tips(ctx context.Context, payload dto.TipsRequest) (ai.TipsReport, error) {
	if err := s.validator.Struct(payload); err != nil {
		return ai.TipsReport{}, err
	}

	problemTitle := ""
	if payload.Problem != nil {
		problemTitle = payload.Problem.Title
	}

	return s.coach.GenerateTips(ctx, payload.Language, payload.SourceCode, problemTitle), nil
}

func (s *learnService) Quiz(ctx context.Context, payload dto.QuizRequest) (dto.QuizResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.QuizResponse{}, err
	}

	question := s.coach.GenerateQuiz(ctx, payload.Language, payload.Topic)
	return dto.QuizResponse{Questions: []ai.QuizQuestion{question}}, nil
}

func (s *learnService) Roadmap(ctx context.Context, payload dto.RoadmapRequest) (dto.RoadmapResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RoadmapResponse{}, err
	}

	level := payload.SkillLevel
	if level == "" {
		level = DefaultSkillLevel
	}

	return dto.RoadmapResponse{Roadmap: s.coach.GenerateRoadmap(ctx, payload.Language, level)}, nil
}
