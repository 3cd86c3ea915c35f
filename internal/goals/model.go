package goals

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a user-owned target with a running progress history.
type Goal struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Name            string          `json:"name"`
	TargetValue     float64         `json:"target_value"`
	CurrentValue    float64         `json:"current_value"`
	Unit            string          `json:"unit,omitempty"`
	TargetDate      *time.Time      `json:"target_date,omitempty"`
	ProgressHistory []ProgressPoint `json:"progress_history"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProgressPoint is one timestamped entry of a goal's history.
type ProgressPoint struct {
	Value      float64   `json:"value"`
	Notes      string    `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}
