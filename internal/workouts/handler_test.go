package workouts

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsefit/pulsefit/internal/auth"
)

func newTestRouter(repo Repository, identity *auth.Identity) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if identity != nil {
				req = req.WithContext(auth.ContextWithIdentity(req.Context(), identity))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/workouts", handler.MountRoutes)
	return r
}

func TestHandlerRequiresIdentity(t *testing.T) {
	router := newTestRouter(newMockRepository(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlerCreate(t *testing.T) {
	owner := uuid.New()
	identity := &auth.Identity{ID: owner, Email: "lifter@example.com"}
	router := newTestRouter(newMockRepository(), identity)

	body := `{
		"name": "Push Day",
		"user_id": "11111111-1111-1111-1111-111111111111",
		"exercises": [{"exercise_id": "bench-press", "sets": 4, "reps": 8, "weight": 80}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/workouts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created Workout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	// The owner always comes from the token, never the payload.
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, "Push Day", created.Name)
}

func TestHandlerCreateValidation(t *testing.T) {
	identity := &auth.Identity{ID: uuid.New()}
	router := newTestRouter(newMockRepository(), identity)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"exercises":[]}`},
		{"zero sets", `{"name":"X","exercises":[{"exercise_id":"bench","sets":0,"reps":8}]}`},
		{"malformed json", `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/workouts", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlerInvalidID(t *testing.T) {
	identity := &auth.Identity{ID: uuid.New()}
	router := newTestRouter(newMockRepository(), identity)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid workout id", body["error"])
}

func TestHandlerCrossUserGet(t *testing.T) {
	repo := newMockRepository()
	owner := uuid.New()
	created, err := NewService(repo).Create(context.Background(), owner, CreateWorkoutRequest{Name: "Mine"})
	require.NoError(t, err)

	intruder := &auth.Identity{ID: uuid.New()}
	router := newTestRouter(repo, intruder)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/"+created.ID.String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerDelete(t *testing.T) {
	repo := newMockRepository()
	owner := uuid.New()
	created, err := NewService(repo).Create(context.Background(), owner, CreateWorkoutRequest{Name: "Mine"})
	require.NoError(t, err)

	router := newTestRouter(repo, &auth.Identity{ID: owner})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/workouts/"+created.ID.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/"+created.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
