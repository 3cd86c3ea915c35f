package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account as seen by the authentication flow.
// PasswordHash is only populated by lookups that explicitly request it
// and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated principal attached to a request context.
type Identity struct {
	ID    uuid.UUID
	Email string
	Name  string
}
