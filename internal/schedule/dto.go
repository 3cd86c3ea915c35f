package schedule

import (
	"time"

	"github.com/google/uuid"
)

// CreateScheduledWorkoutRequest schedules an owned workout for a date.
// The workout reference must resolve to a workout owned by the requester.
type CreateScheduledWorkoutRequest struct {
	WorkoutID    uuid.UUID `json:"workout_id" validate:"required"`
	ScheduledFor time.Time `json:"scheduled_for" validate:"required"`
	Completed    bool      `json:"completed"`
}

// UpdateScheduledWorkoutRequest fully replaces the scheduled workout body.
type UpdateScheduledWorkoutRequest = CreateScheduledWorkoutRequest
