package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/internal/models"
	"github.com/codecoach-dev/codecoach-api/internal/repository"
)

// ErrPlanStorageUnavailable indicates plans cannot be persisted because no
// database is configured. Unlike submissions, plan acceptance is the user's
// primary data, so this failure surfaces.
var ErrPlanStorageUnavailable = errors.New("plan storage unavailable")

// PlanService manages accepted learning plans.
type PlanService interface {
	Accept(ctx context.Context, userID uint, payload dto.PlanAcceptRequest) (dto.PlanAcceptResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]dto.PlanResponse, error)
}

type planService struct {
	plans     repository.PlanRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewPlanService constructs the plan service.
func NewPlanService(plans repository.PlanRepository, validate *validator.Validate, logger zerolog.Logger) PlanService {
	return &planService{
		plans:     plans,
		validator: validate,
		logger:    logger.With().Str("component", "plan_service").Logger(),
	}
}

func (s *planService) Accept(ctx context.Context, userID uint, payload dto.PlanAcceptRequest) (dto.PlanAcceptResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PlanAcceptResponse{}, err
	}

	if s.plans == nil {
		return dto.PlanAcceptResponse{}, ErrPlanStorageUnavailable
	}

	title := payload.Title
	if title == "" {
		title = "Personalized Plan"
	}

	items, err := json.Marshal(payload.PlanItems)
	if err != nil {
		return dto.PlanAcceptResponse{}, err
	}

	plan := models.LearningPlan{
		ID:                uuid.NewString(),
		UserID:            userID,
		Title:             title,
		PlanItems:         datatypes.JSON(items),
		ProgressCompleted: 0,
		ProgressTotal:     len(payload.PlanItems),
	}

	if err := s.plans.Create(ctx, &plan); err != nil {
		return dto.PlanAcceptResponse{}, err
	}

	s.logger.Info().Str("plan_id", plan.ID).Uint("user_id", userID).Int("items", plan.ProgressTotal).Msg("learning plan accepted")
	return dto.PlanAcceptResponse{ID: plan.ID}, nil
}

func (s *planService) ListByUser(ctx context.Context, userID uint) ([]dto.PlanResponse, error) {
	if s.plans == nil {
		return []dto.PlanResponse{}, nil
	}

	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, toPlanResponse(plan))
	}

	return responses, nil
}

func toPlanResponse(plan models.LearningPlan) dto.PlanResponse {
	var items []dto.PlanItemRequest
	if len(plan.PlanItems) > 0 {
		_ = json.Unmarshal(plan.PlanItems, &items)
	}

	return dto.PlanResponse{
		ID:        plan.ID,
		Title:     plan.Title,
		PlanItems: items,
		Progress: dto.PlanProgress{
			Completed: plan.ProgressCompleted,
			Total:     plan.ProgressTotal,
		},
		CreatedAt: plan.CreatedAt,
	}
}
