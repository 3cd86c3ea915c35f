package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Middleware guards protected routes. Requests pass only with a valid
// bearer token whose subject still resolves to an existing user; the
// identity is attached to the request context for handlers.
type Middleware struct {
	Logger  *slog.Logger
	Tokens  *TokenManager
	Service *Service
}

// RequireAuth rejects unauthenticated requests with a uniform 401 payload.
func (m Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			httpx.Error(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.Error(w, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		claims, err := m.Tokens.Verify(parts[1])
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := m.Service.Lookup(r.Context(), userID)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Warn("token subject not resolvable", slog.String("user_id", claims.UserID))
			}
			httpx.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		identity := &Identity{ID: user.ID, Email: user.Email, Name: user.Name}
		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
	})
}
