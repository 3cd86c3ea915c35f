package schedule

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledWorkout pins one of the user's workouts to a calendar date.
type ScheduledWorkout struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	WorkoutID    uuid.UUID `json:"workout_id"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
