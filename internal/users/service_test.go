package users

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsefit/pulsefit/internal/goals"
	"github.com/pulsefit/pulsefit/internal/platform/httpx"
	"github.com/pulsefit/pulsefit/internal/programs"
	"github.com/pulsefit/pulsefit/internal/progress"
	"github.com/pulsefit/pulsefit/internal/schedule"
	"github.com/pulsefit/pulsefit/internal/workouts"
)

type mockRepository struct {
	profile *Profile
	log     []LogEntry
	weights map[string]ExerciseWeight

	// last UpdateProfile arguments
	updatedName *string
	updatedHash *string

	propagated int64
}

func newMockRepository(userID uuid.UUID) *mockRepository {
	return &mockRepository{
		profile: &Profile{ID: userID, Email: "lifter@example.com", Name: "Alex"},
		weights: make(map[string]ExerciseWeight),
	}
}

func (m *mockRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	if m.profile == nil || m.profile.ID != userID {
		return nil, fmt.Errorf("%w: user not found", httpx.ErrNotFound)
	}
	p := *m.profile
	return &p, nil
}

func (m *mockRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, name, passwordHash *string) (*Profile, error) {
	m.updatedName = name
	m.updatedHash = passwordHash
	if name != nil {
		m.profile.Name = *name
	}
	return m.GetProfile(ctx, userID)
}

func (m *mockRepository) ListLog(ctx context.Context, userID uuid.UUID) ([]LogEntry, error) {
	return append([]LogEntry{}, m.log...), nil
}

func (m *mockRepository) AppendLog(ctx context.Context, entry LogEntry) (*LogEntry, error) {
	entry.ID = int64(len(m.log) + 1)
	entry.CreatedAt = time.Now()
	m.log = append(m.log, entry)
	return &entry, nil
}

func (m *mockRepository) ListExerciseWeights(ctx context.Context, userID uuid.UUID) ([]ExerciseWeight, error) {
	list := []ExerciseWeight{}
	for _, w := range m.weights {
		list = append(list, w)
	}
	return list, nil
}

func (m *mockRepository) SetExerciseWeight(ctx context.Context, userID uuid.UUID, exerciseID string, weight float64) (int64, error) {
	m.weights[exerciseID] = ExerciseWeight{ExerciseID: exerciseID, Weight: weight, UpdatedAt: time.Now()}
	return m.propagated, nil
}

type stubListers struct {
	workouts  []workouts.Workout
	programs  []programs.Program
	goals     []goals.Goal
	entries   []progress.Entry
	scheduled []schedule.ScheduledWorkout
}

func (s stubListers) newService(repo Repository) *Service {
	return NewService(repo, bcrypt.MinCost,
		workoutListerFunc(func(ctx context.Context, userID uuid.UUID) ([]workouts.Workout, error) {
			return s.workouts, nil
		}),
		programListerFunc(func(ctx context.Context, userID uuid.UUID) ([]programs.Program, error) {
			return s.programs, nil
		}),
		goalListerFunc(func(ctx context.Context, userID uuid.UUID) ([]goals.Goal, error) {
			return s.goals, nil
		}),
		progressListerFunc(func(ctx context.Context, userID uuid.UUID) ([]progress.Entry, error) {
			return s.entries, nil
		}),
		scheduleListerFunc(func(ctx context.Context, userID uuid.UUID) ([]schedule.ScheduledWorkout, error) {
			return s.scheduled, nil
		}),
	)
}

type workoutListerFunc func(context.Context, uuid.UUID) ([]workouts.Workout, error)

func (f workoutListerFunc) List(ctx context.Context, userID uuid.UUID) ([]workouts.Workout, error) {
	return f(ctx, userID)
}

type programListerFunc func(context.Context, uuid.UUID) ([]programs.Program, error)

func (f programListerFunc) List(ctx context.Context, userID uuid.UUID) ([]programs.Program, error) {
	return f(ctx, userID)
}

type goalListerFunc func(context.Context, uuid.UUID) ([]goals.Goal, error)

func (f goalListerFunc) List(ctx context.Context, userID uuid.UUID) ([]goals.Goal, error) {
	return f(ctx, userID)
}

type progressListerFunc func(context.Context, uuid.UUID) ([]progress.Entry, error)

func (f progressListerFunc) List(ctx context.Context, userID uuid.UUID) ([]progress.Entry, error) {
	return f(ctx, userID)
}

type scheduleListerFunc func(context.Context, uuid.UUID) ([]schedule.ScheduledWorkout, error)

func (f scheduleListerFunc) List(ctx context.Context, userID uuid.UUID) ([]schedule.ScheduledWorkout, error) {
	return f(ctx, userID)
}

func TestUpdateProfileNameOnly(t *testing.T) {
	userID := uuid.New()
	repo := newMockRepository(userID)
	svc := stubListers{}.newService(repo)

	name := "Sam"
	profile, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.Name)
	// No password supplied, so no hash must reach the repository.
	assert.Nil(t, repo.updatedHash)
}

func TestUpdateProfileWithPassword(t *testing.T) {
	userID := uuid.New()
	repo := newMockRepository(userID)
	svc := stubListers{}.newService(repo)

	password := "newsupersecret"
	_, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileRequest{Password: &password})
	require.NoError(t, err)

	require.NotNil(t, repo.updatedHash)
	assert.NotEqual(t, password, *repo.updatedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*repo.updatedHash), []byte(password)))
}

func TestAppendLogKeepsOrder(t *testing.T) {
	userID := uuid.New()
	repo := newMockRepository(userID)
	svc := stubListers{}.newService(repo)
	ctx := context.Background()

	for _, name := range []string{"Push Day", "Pull Day", "Leg Day"} {
		_, err := svc.AppendLog(ctx, userID, AppendLogEntryRequest{
			Date:      time.Now(),
			Name:      name,
			Completed: true,
		})
		require.NoError(t, err)
	}

	log, err := svc.Log(ctx, userID)
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, "Push Day", log[0].Name)
	assert.Equal(t, "Leg Day", log[2].Name)
}

func TestSetExerciseWeightLatestWins(t *testing.T) {
	userID := uuid.New()
	repo := newMockRepository(userID)
	repo.propagated = 2
	svc := stubListers{}.newService(repo)
	ctx := context.Background()

	updated, err := svc.SetExerciseWeight(ctx, userID, UpdateExerciseWeightRequest{ExerciseID: "bench-press", Weight: 80})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	_, err = svc.SetExerciseWeight(ctx, userID, UpdateExerciseWeightRequest{ExerciseID: "bench-press", Weight: 85})
	require.NoError(t, err)

	weights, err := svc.repo.ListExerciseWeights(ctx, userID)
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, 85.0, weights[0].Weight)
}

func TestInitialDataAggregates(t *testing.T) {
	userID := uuid.New()
	repo := newMockRepository(userID)
	repo.log = []LogEntry{{ID: 1, UserID: userID, Name: "Push Day"}}

	listers := stubListers{
		workouts:  []workouts.Workout{{ID: uuid.New(), UserID: userID, Name: "Push Day"}},
		programs:  []programs.Program{{ID: uuid.New(), UserID: userID, Name: "PPL"}},
		goals:     []goals.Goal{{ID: uuid.New(), UserID: userID, Name: "Squat 150kg"}},
		entries:   []progress.Entry{{ID: uuid.New(), UserID: userID}},
		scheduled: []schedule.ScheduledWorkout{{ID: uuid.New(), UserID: userID}},
	}
	svc := listers.newService(repo)

	data, err := svc.InitialData(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, data.Profile)
	assert.Equal(t, userID, data.Profile.ID)
	assert.Len(t, data.Log, 1)
	assert.Len(t, data.Workouts, 1)
	assert.Len(t, data.Programs, 1)
	assert.Len(t, data.Goals, 1)
	assert.Len(t, data.ProgressEntries, 1)
	assert.Len(t, data.Scheduled, 1)
}

func TestInitialDataMissingUser(t *testing.T) {
	repo := newMockRepository(uuid.New())
	svc := stubListers{}.newService(repo)

	_, err := svc.InitialData(context.Background(), uuid.New())
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}
