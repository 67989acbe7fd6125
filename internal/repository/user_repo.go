package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codecoach-dev/codecoach-api/internal/models"
)

// UserRepository exposes the read path the leaderboard is derived from.
type UserRepository interface {
	ListByPoints(ctx context.Context, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository instantiates the repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) ListByPoints(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = 50
	}

	// Ties broken by ID ascending so ranks are stable across reads.
	var users []models.User
	err := r.db.WithContext(ctx).
		Order("points DESC").
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
