package models

import "time"

// User carries the profile fields the leaderboard is derived from.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DisplayName    string    `gorm:"size:255" json:"display_name"`
	Email          string    `gorm:"size:255;uniqueIndex" json:"email"`
	Points         int       `gorm:"not null;default:0;index" json:"points"`
	ProblemsSolved int       `gorm:"not null;default:0" json:"problems_solved"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
