package models

import (
	"time"

	"gorm.io/datatypes"
)

// LearningPlan is a user-accepted 7-day roadmap with completion tracking.
// Total is fixed at creation; Completed is advanced by the UI later.
type LearningPlan struct {
	ID                string         `gorm:"primaryKey;size:36" json:"id"`
	UserID            uint           `gorm:"not null;index" json:"user_id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	PlanItems         datatypes.JSON `json:"plan_items"`
	ProgressCompleted int            `gorm:"not null" json:"progress_completed"`
	ProgressTotal     int            `gorm:"not null" json:"progress_total"`
	CreatedAt         time.Time      `json:"created_at"`
}
