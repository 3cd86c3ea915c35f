package programs

import (
	"context"

	"github.com/google/uuid"
)

// Service applies the ownership-scoped CRUD contract for programs.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all programs owned by the user, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Program, error) {
	return s.repo.List(ctx, userID)
}

// Get returns a single program scoped to the owner.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Program, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create persists a program owned by userID.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateProgramRequest) (*Program, error) {
	program := Program{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		Days:          toDays(req.Days),
	}
	if err := s.repo.Create(ctx, program); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, program.ID)
}

// Update replaces the program body, scoped to the owner.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req UpdateProgramRequest) (*Program, error) {
	program := Program{
		ID:            id,
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		Days:          toDays(req.Days),
	}
	if err := s.repo.Update(ctx, program); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, id)
}

// Delete removes the program, scoped to the owner.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func toDays(inputs []ProgramDayInput) []ProgramDay {
	days := make([]ProgramDay, 0, len(inputs))
	for _, in := range inputs {
		days = append(days, ProgramDay{
			DayOfWeek: in.DayOfWeek,
			Title:     in.Title,
			WorkoutID: in.WorkoutID,
		})
	}
	return days
}
