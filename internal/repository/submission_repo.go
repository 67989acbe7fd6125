package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codecoach-dev/codecoach-api/internal/models"
)

// SubmissionRepository defines data operations for submissions. Submissions
// are insert-only; there is no update path.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository instantiates the repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.Submission, error) {
	if limit <= 0 {
		limit = 20
	}

	var submissions []models.Submission
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}

	return submissions, nil
}
