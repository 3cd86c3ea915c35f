package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

type mockRepository struct {
	scheduled map[uuid.UUID]ScheduledWorkout
	// workouts maps workout id to owner.
	workouts map[uuid.UUID]uuid.UUID
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		scheduled: make(map[uuid.UUID]ScheduledWorkout),
		workouts:  make(map[uuid.UUID]uuid.UUID),
	}
}

func (m *mockRepository) List(ctx context.Context, userID uuid.UUID) ([]ScheduledWorkout, error) {
	list := []ScheduledWorkout{}
	for _, sw := range m.scheduled {
		if sw.UserID == userID {
			list = append(list, sw)
		}
	}
	return list, nil
}

func (m *mockRepository) Get(ctx context.Context, userID, id uuid.UUID) (*ScheduledWorkout, error) {
	sw, ok := m.scheduled[id]
	if !ok || sw.UserID != userID {
		return nil, fmt.Errorf("%w: scheduled workout not found", httpx.ErrNotFound)
	}
	return &sw, nil
}

func (m *mockRepository) Create(ctx context.Context, sw ScheduledWorkout) error {
	m.scheduled[sw.ID] = sw
	return nil
}

func (m *mockRepository) Update(ctx context.Context, sw ScheduledWorkout) error {
	existing, ok := m.scheduled[sw.ID]
	if !ok || existing.UserID != sw.UserID {
		return fmt.Errorf("%w: scheduled workout not found", httpx.ErrNotFound)
	}
	m.scheduled[sw.ID] = sw
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sw, ok := m.scheduled[id]
	if !ok || sw.UserID != userID {
		return fmt.Errorf("%w: scheduled workout not found", httpx.ErrNotFound)
	}
	delete(m.scheduled, id)
	return nil
}

func (m *mockRepository) WorkoutOwned(ctx context.Context, userID, workoutID uuid.UUID) (bool, error) {
	owner, ok := m.workouts[workoutID]
	return ok && owner == userID, nil
}

func TestCreateScheduledWorkout(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	owner := uuid.New()
	workoutID := uuid.New()
	repo.workouts[workoutID] = owner

	when := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), owner, CreateScheduledWorkoutRequest{
		WorkoutID:    workoutID,
		ScheduledFor: when,
	})
	require.NoError(t, err)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, workoutID, created.WorkoutID)
	assert.True(t, created.ScheduledFor.Equal(when))
	assert.False(t, created.Completed)
}

func TestCreateRejectsForeignWorkout(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	alice, bob := uuid.New(), uuid.New()
	workoutID := uuid.New()
	repo.workouts[workoutID] = alice

	// Bob referencing Alice's workout fails the same way as a workout
	// that does not exist at all.
	_, errForeign := svc.Create(context.Background(), bob, CreateScheduledWorkoutRequest{
		WorkoutID:    workoutID,
		ScheduledFor: time.Now(),
	})
	_, errMissing := svc.Create(context.Background(), bob, CreateScheduledWorkoutRequest{
		WorkoutID:    uuid.New(),
		ScheduledFor: time.Now(),
	})
	assert.ErrorIs(t, errForeign, httpx.ErrValidation)
	assert.ErrorIs(t, errMissing, httpx.ErrValidation)
	assert.Equal(t, errForeign.Error(), errMissing.Error())
	assert.Empty(t, repo.scheduled)
}

func TestUpdateMarksCompleted(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	owner := uuid.New()
	workoutID := uuid.New()
	repo.workouts[workoutID] = owner
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, CreateScheduledWorkoutRequest{
		WorkoutID:    workoutID,
		ScheduledFor: time.Now(),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, created.ID, UpdateScheduledWorkoutRequest{
		WorkoutID:    workoutID,
		ScheduledFor: created.ScheduledFor,
		Completed:    true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
}
