package programs

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

type mockRepository struct {
	programs map[uuid.UUID]Program
}

func newMockRepository() *mockRepository {
	return &mockRepository{programs: make(map[uuid.UUID]Program)}
}

func (m *mockRepository) List(ctx context.Context, userID uuid.UUID) ([]Program, error) {
	list := []Program{}
	for _, p := range m.programs {
		if p.UserID == userID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (m *mockRepository) Get(ctx context.Context, userID, id uuid.UUID) (*Program, error) {
	p, ok := m.programs[id]
	if !ok || p.UserID != userID {
		return nil, fmt.Errorf("%w: program not found", httpx.ErrNotFound)
	}
	return &p, nil
}

func (m *mockRepository) Create(ctx context.Context, program Program) error {
	m.programs[program.ID] = program
	return nil
}

func (m *mockRepository) Update(ctx context.Context, program Program) error {
	existing, ok := m.programs[program.ID]
	if !ok || existing.UserID != program.UserID {
		return fmt.Errorf("%w: program not found", httpx.ErrNotFound)
	}
	m.programs[program.ID] = program
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	p, ok := m.programs[id]
	if !ok || p.UserID != userID {
		return fmt.Errorf("%w: program not found", httpx.ErrNotFound)
	}
	delete(m.programs, id)
	return nil
}

func TestCreateProgramWithDays(t *testing.T) {
	svc := NewService(newMockRepository())
	owner := uuid.New()
	workoutID := uuid.New()

	created, err := svc.Create(context.Background(), owner, CreateProgramRequest{
		Name:          "PPL",
		DurationWeeks: 8,
		Days: []ProgramDayInput{
			{DayOfWeek: 1, Title: "Push", WorkoutID: &workoutID},
			{DayOfWeek: 3, Title: "Pull"},
			{DayOfWeek: 5, Title: "Legs"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, 8, created.DurationWeeks)
	require.Len(t, created.Days, 3)
	assert.Equal(t, "Push", created.Days[0].Title)
	require.NotNil(t, created.Days[0].WorkoutID)
	assert.Equal(t, workoutID, *created.Days[0].WorkoutID)
	assert.Nil(t, created.Days[1].WorkoutID)
}

func TestProgramOwnershipIsolation(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, CreateProgramRequest{Name: "PPL", DurationWeeks: 8})
	require.NoError(t, err)

	_, err = svc.Get(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, httpx.ErrNotFound)

	_, err = svc.Update(ctx, uuid.New(), created.ID, UpdateProgramRequest{Name: "Stolen", DurationWeeks: 1})
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestUpdateReplacesDays(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, CreateProgramRequest{
		Name:          "PPL",
		DurationWeeks: 8,
		Days:          []ProgramDayInput{{DayOfWeek: 1, Title: "Push"}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, created.ID, UpdateProgramRequest{
		Name:          "Upper/Lower",
		DurationWeeks: 6,
		Days: []ProgramDayInput{
			{DayOfWeek: 2, Title: "Upper"},
			{DayOfWeek: 4, Title: "Lower"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Upper/Lower", updated.Name)
	require.Len(t, updated.Days, 2)
	assert.Equal(t, "Upper", updated.Days[0].Title)
}
