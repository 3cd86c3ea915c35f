package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := manager.Issue(userID, "lifter@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "lifter@example.com", claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(uuid.New(), "lifter@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue(uuid.New(), "lifter@example.com")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := manager.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
