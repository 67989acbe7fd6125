package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codecoach-dev/codecoach-api/internal/models"
)

// PlanRepository defines data operations for learning plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *models.LearningPlan) error
	ListByUser(ctx context.Context, userID uint) ([]models.LearningPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository instantiates the repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *models.LearningPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) ListByUser(ctx context.Context, userID uint) ([]models.LearningPlan, error) {
	var plans []models.LearningPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	return plans, nil
}
