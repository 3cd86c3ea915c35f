package progress

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
	entries map[uuid.UUID]Entry
}

func newMockRepository() *mockRepository {
	return &mockRepository{entries: make(map[uuid.UUID]Entry)}
}

func (m *mockRepository) List(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	list := []Entry{}
	for _, e := range m.entries {
		if e.UserID == userID {
			list = append(list, e)
		}
	}
	return list, nil
}

func (m *mockRepository) Get(ctx context.Context, userID, id uuid.UUID) (*Entry, error) {
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return nil, fmt.Errorf("%w: progress entry not found", httpx.ErrNotFound)
	}
	return &e, nil
}

func (m *mockRepository) Create(ctx context.Context, entry Entry) error {
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockRepository) Update(ctx context.Context, entry Entry) error {
	existing, ok := m.entries[entry.ID]
	if !ok || existing.UserID != entry.UserID {
		return fmt.Errorf("%w: progress entry not found", httpx.ErrNotFound)
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return fmt.Errorf("%w: progress entry not found", httpx.ErrNotFound)
	}
	delete(m.entries, id)
	return nil
}

func TestCreateDefaultsMeasurements(t *testing.T) {
	svc := NewService(newMockRepository())
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, CreateEntryRequest{
		WorkoutDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotNil(t, created.Measurements)
	assert.Empty(t, created.Measurements)
	assert.Nil(t, created.BodyWeight)
}

func TestCreateKeepsMeasurements(t *testing.T) {
	svc := NewService(newMockRepository())
	owner := uuid.New()
	weight := 82.5

	created, err := svc.Create(context.Background(), owner, CreateEntryRequest{
		WorkoutDate:  time.Now(),
		BodyWeight:   &weight,
		Measurements: map[string]float64{"waist": 84, "chest": 104},
	})
	require.NoError(t, err)
	require.NotNil(t, created.BodyWeight)
	assert.Equal(t, 82.5, *created.BodyWeight)
	assert.Equal(t, 84.0, created.Measurements["waist"])
}

func TestEntryOwnershipIsolation(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, CreateEntryRequest{WorkoutDate: time.Now()})
	require.NoError(t, err)

	_, err = svc.Get(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, httpx.ErrNotFound)

	err = svc.Delete(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}
