package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Service applies the ownership-scoped CRUD contract for scheduled workouts.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all scheduled workouts owned by the user, latest date first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]ScheduledWorkout, error) {
	return s.repo.List(ctx, userID)
}

// Get returns a single scheduled workout scoped to the owner.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*ScheduledWorkout, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create schedules an owned workout. A reference to a workout the user
// does not own fails validation without leaking whether it exists.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateScheduledWorkoutRequest) (*ScheduledWorkout, error) {
	if err := s.checkWorkout(ctx, userID, req.WorkoutID); err != nil {
		return nil, err
	}
	sw := ScheduledWorkout{
		ID:           uuid.New(),
		UserID:       userID,
		WorkoutID:    req.WorkoutID,
		ScheduledFor: req.ScheduledFor,
		Completed:    req.Completed,
	}
	if err := s.repo.Create(ctx, sw); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, sw.ID)
}

// Update replaces the scheduled workout body, scoped to the owner.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req UpdateScheduledWorkoutRequest) (*ScheduledWorkout, error) {
	if err := s.checkWorkout(ctx, userID, req.WorkoutID); err != nil {
		return nil, err
	}
	sw := ScheduledWorkout{
		ID:           id,
		UserID:       userID,
		WorkoutID:    req.WorkoutID,
		ScheduledFor: req.ScheduledFor,
		Completed:    req.Completed,
	}
	if err := s.repo.Update(ctx, sw); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, id)
}

// Delete removes the scheduled workout, scoped to the owner.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) checkWorkout(ctx context.Context, userID, workoutID uuid.UUID) error {
	owned, err := s.repo.WorkoutOwned(ctx, userID, workoutID)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("%w: unknown workout", httpx.ErrValidation)
	}
	return nil
}
