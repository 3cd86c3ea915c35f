package users

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the user account as returned to its owner.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LogEntry is one workout-completion record. Entries are append-only and
// returned in insertion order.
type LogEntry struct {
	ID        int64      `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Date      time.Time  `json:"date"`
	Name      string     `json:"name"`
	Completed bool       `json:"completed"`
	Summary   string     `json:"summary,omitempty"`
	WorkoutID *uuid.UUID `json:"workout_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ExerciseWeight is the last-used default weight for one catalog exercise.
// Latest write wins per exercise id.
type ExerciseWeight struct {
	ExerciseID string    `json:"exercise_id"`
	Weight     float64   `json:"weight"`
	UpdatedAt  time.Time `json:"updated_at"`
}
