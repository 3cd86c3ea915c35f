package workouts

import (
	"context"

	"github.com/google/uuid"
)

// Service applies the ownership-scoped CRUD contract for workouts.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all workouts owned by the user, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Workout, error) {
	return s.repo.List(ctx, userID)
}

// Get returns a single workout. A workout owned by another user is
// indistinguishable from a missing one.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Workout, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create persists a workout owned by userID.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateWorkoutRequest) (*Workout, error) {
	workout := Workout{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Notes:     req.Notes,
		Exercises: toExercises(req.Exercises),
	}
	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, workout.ID)
}

// Update replaces the workout body, scoped to the owner.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req UpdateWorkoutRequest) (*Workout, error) {
	workout := Workout{
		ID:        id,
		UserID:    userID,
		Name:      req.Name,
		Notes:     req.Notes,
		Exercises: toExercises(req.Exercises),
	}
	if err := s.repo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, id)
}

// Delete removes the workout, scoped to the owner.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func toExercises(inputs []ExerciseInput) []Exercise {
	exercises := make([]Exercise, 0, len(inputs))
	for _, in := range inputs {
		exercises = append(exercises, Exercise{
			ExerciseID: in.ExerciseID,
			Sets:       in.Sets,
			Reps:       in.Reps,
			Weight:     in.Weight,
		})
	}
	return exercises
}
