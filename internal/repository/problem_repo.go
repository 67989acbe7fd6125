package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codecoach-dev/codecoach-api/internal/models"
)

// ProblemRepository exposes read-only access to the problem catalog.
type ProblemRepository interface {
	// List returns problems filtered by difficulty when set, ordered by ID.
	// Tag filtering and pagination happen in the service so the database and
	// static-fallback paths behave identically.
	List(ctx context.Context, difficulty string) ([]models.Problem, error)
}

type problemRepository struct {
	db *gorm.DB
}

// NewProblemRepository instantiates the repository.
func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) List(ctx context.Context, difficulty string) ([]models.Problem, error) {
	query := r.db.WithContext(ctx).Model(&models.Problem{})
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var problems []models.Problem
	if err := query.Order("id ASC").Find(&problems).Error; err != nil {
		return nil, err
	}

	return problems, nil
}
