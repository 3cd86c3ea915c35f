package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/pulsefit/pulsefit/internal/goals"
	"github.com/pulsefit/pulsefit/internal/programs"
	"github.com/pulsefit/pulsefit/internal/progress"
	"github.com/pulsefit/pulsefit/internal/schedule"
	"github.com/pulsefit/pulsefit/internal/workouts"
)

// UpdateProfileRequest changes the display name and, when set, the password.
// The password hash is recomputed only when Password is supplied.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// AppendLogEntryRequest records a workout completion in the user's log.
type AppendLogEntryRequest struct {
	Date      time.Time  `json:"date" validate:"required"`
	Name      string     `json:"name" validate:"required,max=100"`
	Completed bool       `json:"completed"`
	Summary   string     `json:"summary" validate:"omitempty,max=2000"`
	WorkoutID *uuid.UUID `json:"workout_id,omitempty"`
}

// UpdateExerciseWeightRequest sets the default weight for an exercise and
// propagates it to the user's workouts.
type UpdateExerciseWeightRequest struct {
	ExerciseID string  `json:"exercise_id" validate:"required,max=100"`
	Weight     float64 `json:"weight" validate:"gte=0"`
}

// InitialData is the one-shot payload the frontend loads after login.
type InitialData struct {
	Profile         *Profile                    `json:"profile"`
	Log             []LogEntry                  `json:"log"`
	ExerciseWeights []ExerciseWeight            `json:"exercise_weights"`
	Workouts        []workouts.Workout          `json:"workouts"`
	Programs        []programs.Program          `json:"programs"`
	Goals           []goals.Goal                `json:"goals"`
	ProgressEntries []progress.Entry            `json:"progress_entries"`
	Scheduled       []schedule.ScheduledWorkout `json:"scheduled_workouts"`
}
