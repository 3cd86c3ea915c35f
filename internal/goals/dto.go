package goals

import "time"

// CreateGoalRequest is the payload for creating a goal.
type CreateGoalRequest struct {
	Name         string     `json:"name" validate:"required,max=100"`
	TargetValue  float64    `json:"target_value" validate:"required,gt=0"`
	CurrentValue float64    `json:"current_value" validate:"gte=0"`
	Unit         string     `json:"unit" validate:"omitempty,max=20"`
	TargetDate   *time.Time `json:"target_date,omitempty"`
}

// UpdateGoalRequest fully replaces the goal body; history is untouched.
type UpdateGoalRequest = CreateGoalRequest

// UpdateProgressRequest appends a progress point. Negative values are
// rejected before any state changes.
type UpdateProgressRequest struct {
	Value float64 `json:"value"`
	Notes string  `json:"notes" validate:"omitempty,max=500"`
}
