package models

import (
	"time"

	"gorm.io/datatypes"
)

// Submission records one orchestrated run for an authenticated user. Rows are
// written once and never updated; anonymous runs are not persisted at all.
type Submission struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"not null;index" json:"user_id"`
	ProblemID   string            `gorm:"size:128" json:"problem_id"`
	Language    string            `gorm:"size:32;not null" json:"language"`
	Source      string            `gorm:"type:text;not null" json:"source"`
	Stdin       string            `gorm:"type:text" json:"stdin"`
	JudgeResult datatypes.JSONMap `json:"judge_result"`
	AIReport    datatypes.JSONMap `json:"ai_report"`
	CreatedAt   time.Time         `json:"created_at"`
}
