package progress

import "time"

// CreateEntryRequest is the payload for recording a progress entry.
type CreateEntryRequest struct {
	WorkoutDate  time.Time          `json:"workout_date" validate:"required"`
	BodyWeight   *float64           `json:"body_weight,omitempty" validate:"omitempty,gt=0"`
	Notes        string             `json:"notes" validate:"omitempty,max=2000"`
	Measurements map[string]float64 `json:"measurements,omitempty"`
}

// UpdateEntryRequest fully replaces the entry body.
type UpdateEntryRequest = CreateEntryRequest
