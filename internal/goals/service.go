package goals

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Service applies the ownership-scoped CRUD contract for goals.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all goals owned by the user, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	return s.repo.List(ctx, userID)
}

// Get returns a single goal scoped to the owner.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create persists a goal owned by userID.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateGoalRequest) (*Goal, error) {
	goal := Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		TargetDate:   req.TargetDate,
	}
	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, goal.ID)
}

// Update replaces the goal body, scoped to the owner. Progress history
// is never rewritten here.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req UpdateGoalRequest) (*Goal, error) {
	goal := Goal{
		ID:           id,
		UserID:       userID,
		Name:         req.Name,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		TargetDate:   req.TargetDate,
	}
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, id)
}

// Delete removes the goal, scoped to the owner.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// UpdateProgress appends a timestamped history point and sets the goal's
// current value. Negative values fail before any state changes.
func (s *Service) UpdateProgress(ctx context.Context, userID, id uuid.UUID, req UpdateProgressRequest) (*Goal, error) {
	if req.Value < 0 {
		return nil, fmt.Errorf("%w: progress value cannot be negative", httpx.ErrValidation)
	}
	point := ProgressPoint{
		Value:      req.Value,
		Notes:      req.Notes,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.repo.AppendProgress(ctx, userID, id, point); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, id)
}
