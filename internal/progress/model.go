package progress

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a dated progress record: body weight plus arbitrary named
// measurements (waist, body fat, ...).
type Entry struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	WorkoutDate  time.Time          `json:"workout_date"`
	BodyWeight   *float64           `json:"body_weight,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Measurements map[string]float64 `json:"measurements"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
