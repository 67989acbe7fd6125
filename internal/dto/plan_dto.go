package dto

import "time"

// PlanItemRequest is one roadmap entry the user chose to track.
type PlanItemRequest struct {
	Day      int     `json:"day" validate:"required,gt=0"`
	Task     string  `json:"task" validate:"required"`
	EstHours float64 `json:"est_hours" validate:"omitempty,gt=0"`
}

// PlanAcceptRequest persists an accepted roadmap as a tracked learning plan.
type PlanAcceptRequest struct {
	Title     string            `json:"title"`
	PlanItems []PlanItemRequest `json:"planItems" validate:"required,min=1,dive"`
}

// PlanProgress tracks completion of a plan's items.
type PlanProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// PlanAcceptResponse returns the identifier of the created plan.
type PlanAcceptResponse struct {
	ID string `json:"id"`
}

// PlanResponse is one tracked learning plan as rendered on the profile page.
type PlanResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	PlanItems []PlanItemRequest `json:"planItems"`
	Progress  PlanProgress      `json:"progress"`
	CreatedAt time.Time         `json:"createdAt"`
}
