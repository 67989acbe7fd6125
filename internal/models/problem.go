package models

import (
	"time"

	"gorm.io/datatypes"
)

// Problem difficulty levels as stored and queried.
const (
	ProblemDifficultyEasy   = "Easy"
	ProblemDifficultyMedium = "Medium"
	ProblemDifficultyHard   = "Hard"
)

// Problem is read-only reference data describing a practice exercise.
type Problem struct {
	ID         string         `gorm:"primaryKey;size:128" json:"id"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Statement  string         `gorm:"type:text" json:"statement"`
	Difficulty string         `gorm:"size:16;index" json:"difficulty"`
	Tags       datatypes.JSON `json:"tags"`
	Examples   datatypes.JSON `json:"examples"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
