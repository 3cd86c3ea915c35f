package programs

import (
	"time"

	"github.com/google/uuid"
)

// Program is a user-owned training program spanning a number of weeks.
type Program struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	DurationWeeks int          `json:"duration_weeks"`
	Days          []ProgramDay `json:"days"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ProgramDay assigns a title and optional workout to a weekday (1=Monday).
type ProgramDay struct {
	DayOfWeek int        `json:"day_of_week"`
	Title     string     `json:"title"`
	WorkoutID *uuid.UUID `json:"workout_id,omitempty"`
}
