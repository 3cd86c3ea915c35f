package workouts

import (
	"time"

	"github.com/google/uuid"
)

// Workout is a user-owned workout template with an ordered exercise list.
type Workout struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Notes     string     `json:"notes,omitempty"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Exercise is one entry of a workout's exercise list. ExerciseID refers
// to the public catalog.
type Exercise struct {
	ExerciseID string  `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
}
