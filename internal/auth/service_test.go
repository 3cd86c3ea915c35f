package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

type mockRepository struct {
	byID    map[uuid.UUID]User
	byEmail map[string]uuid.UUID

	createCalls int
	createErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		byID:    make(map[uuid.UUID]User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *mockRepository) Create(ctx context.Context, user User) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.byEmail[user.Email]; exists {
		return fmt.Errorf("%w: email already registered", httpx.ErrConflict)
	}
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	id, ok := m.byEmail[email]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	user := m.byID[id]
	return &user, nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	user.PasswordHash = ""
	return &user, nil
}

func newTestService(repo Repository) *Service {
	tokens := NewTokenManager("test-secret", time.Hour)
	return NewService(repo, tokens, bcrypt.MinCost)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Lifter@Example.com", "supersecret", "Alex")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "lifter@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	// Stored hash must never be the plaintext.
	stored := repo.byID[user.ID]
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))

	got, err := svc.Authenticate(ctx, "lifter@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "lifter@example.com", "supersecret", "")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "LIFTER@example.com", "othersecret", "")
	assert.ErrorIs(t, err, httpx.ErrConflict)
}

func TestRegisterShortPassword(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, _, err := svc.Register(context.Background(), "lifter@example.com", "short", "")
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Zero(t, repo.createCalls)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "lifter@example.com", "supersecret", "")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.Authenticate(ctx, "nobody@example.com", "supersecret")
	_, errWrong := svc.Authenticate(ctx, "lifter@example.com", "wrongsecret")
	assert.ErrorIs(t, errUnknown, httpx.ErrUnauthorized)
	assert.ErrorIs(t, errWrong, httpx.ErrUnauthorized)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newMockRepository()
	tokens := NewTokenManager("test-secret", time.Hour)
	svc := NewService(repo, tokens, bcrypt.MinCost)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "lifter@example.com", "supersecret", "")
	require.NoError(t, err)

	_, token, err := svc.Login(ctx, "lifter@example.com", "supersecret")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.String(), claims.UserID)
}

func TestRefreshRequiresIdentity(t *testing.T) {
	svc := newTestService(newMockRepository())

	_, err := svc.Refresh(context.Background(), nil)
	assert.ErrorIs(t, err, httpx.ErrUnauthorized)
}

func TestLookupUnknownUser(t *testing.T) {
	svc := newTestService(newMockRepository())

	_, err := svc.Lookup(context.Background(), uuid.New())
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}
