package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Service wraps registration and credential verification rules.
type Service struct {
	repo       Repository
	tokens     *TokenManager
	bcryptCost int
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenManager, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user account and issues a token for it.
// The stored password is a bcrypt hash; the returned user never carries it.
func (s *Service) Register(ctx context.Context, email, password, name string) (*User, string, error) {
	email = NormalizeEmail(email)
	if len(password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", httpx.ErrValidation)
	}
	if len(name) > 50 {
		return nil, "", fmt.Errorf("%w: name must be at most 50 characters", httpx.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("auth: hash password: %w", err)
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = ""
	return &user, token, nil
}

// Authenticate validates email/password credentials. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
	}
	user.PasswordHash = ""
	return user, nil
}

// Login authenticates and issues a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Refresh re-issues a token for an already-authenticated identity.
func (s *Service) Refresh(ctx context.Context, identity *Identity) (string, error) {
	if identity == nil {
		return "", fmt.Errorf("%w: authentication required", httpx.ErrUnauthorized)
	}
	return s.tokens.Issue(identity.ID, identity.Email)
}

// Lookup resolves a user id to its account, without the password hash.
func (s *Service) Lookup(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth: lookup user: %w", err)
	}
	return user, nil
}
