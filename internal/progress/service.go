package progress

import (
	"context"

	"github.com/google/uuid"
)

// Service applies the ownership-scoped CRUD contract for progress entries.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all entries owned by the user, most recent workout date first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	return s.repo.List(ctx, userID)
}

// Get returns a single entry scoped to the owner.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Entry, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create persists an entry owned by userID.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateEntryRequest) (*Entry, error) {
	entry := Entry{
		ID:           uuid.New(),
		UserID:       userID,
		WorkoutDate:  req.WorkoutDate,
		BodyWeight:   req.BodyWeight,
		Notes:        req.Notes,
		Measurements: req.Measurements,
	}
	if entry.Measurements == nil {
		entry.Measurements = map[string]float64{}
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, entry.ID)
}

// Update replaces the entry body, scoped to the owner.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req UpdateEntryRequest) (*Entry, error) {
	entry := Entry{
		ID:           id,
		UserID:       userID,
		WorkoutDate:  req.WorkoutDate,
		BodyWeight:   req.BodyWeight,
		Notes:        req.Notes,
		Measurements: req.Measurements,
	}
	if entry.Measurements == nil {
		entry.Measurements = map[string]float64{}
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, id)
}

// Delete removes the entry, scoped to the owner.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
