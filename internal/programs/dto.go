package programs

import "github.com/google/uuid"

// ProgramDayInput describes one weekday slot in a create/update payload.
type ProgramDayInput struct {
	DayOfWeek int        `json:"day_of_week" validate:"required,gte=1,lte=7"`
	Title     string     `json:"title" validate:"required,max=100"`
	WorkoutID *uuid.UUID `json:"workout_id,omitempty"`
}

// CreateProgramRequest is the payload for creating a program. Ownership
// always comes from the authenticated identity, never the body.
type CreateProgramRequest struct {
	Name          string            `json:"name" validate:"required,max=100"`
	Description   string            `json:"description" validate:"omitempty,max=2000"`
	DurationWeeks int               `json:"duration_weeks" validate:"required,gte=1,lte=52"`
	Days          []ProgramDayInput `json:"days" validate:"dive"`
}

// UpdateProgramRequest fully replaces the program body.
type UpdateProgramRequest = CreateProgramRequest
