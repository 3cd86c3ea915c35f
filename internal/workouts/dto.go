package workouts

// ExerciseInput describes one exercise entry in a create/update payload.
type ExerciseInput struct {
	ExerciseID string  `json:"exercise_id" validate:"required,max=100"`
	Sets       int     `json:"sets" validate:"required,gte=1,lte=50"`
	Reps       int     `json:"reps" validate:"required,gte=1,lte=500"`
	Weight     float64 `json:"weight" validate:"gte=0"`
}

// CreateWorkoutRequest is the payload for creating a workout. Any
// client-supplied owner field is ignored; ownership comes from the token.
type CreateWorkoutRequest struct {
	Name      string          `json:"name" validate:"required,max=100"`
	Notes     string          `json:"notes" validate:"omitempty,max=2000"`
	Exercises []ExerciseInput `json:"exercises" validate:"dive"`
}

// UpdateWorkoutRequest fully replaces the workout body.
type UpdateWorkoutRequest = CreateWorkoutRequest
