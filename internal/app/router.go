package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pulsefit/pulsefit/internal/auth"
	"github.com/pulsefit/pulsefit/internal/exercises"
	"github.com/pulsefit/pulsefit/internal/goals"
	"github.com/pulsefit/pulsefit/internal/programs"
	"github.com/pulsefit/pulsefit/internal/progress"
	"github.com/pulsefit/pulsefit/internal/schedule"
	"github.com/pulsefit/pulsefit/internal/users"
	"github.com/pulsefit/pulsefit/internal/workouts"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	AuthMiddleware auth.Middleware

	AuthHandler      *auth.Handler
	ExerciseHandler  *exercises.Handler
	WorkoutHandler   *workouts.Handler
	ProgramHandler   *programs.Handler
	GoalHandler      *goals.Handler
	ProgressHandler  *progress.Handler
	ScheduleHandler  *schedule.Handler
	UserHandler      *users.Handler
}

// NewRouter constructs the chi.Router with PulseFit defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public surface: registration, login, and the shared catalog.
		r.Route("/auth", func(r chi.Router) {
			params.AuthHandler.MountRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(params.AuthMiddleware.RequireAuth)
				params.AuthHandler.MountProtectedRoutes(r)
			})
		})
		r.Route("/exercises", params.ExerciseHandler.MountRoutes)

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(params.AuthMiddleware.RequireAuth)

			r.Route("/workouts", params.WorkoutHandler.MountRoutes)
			r.Route("/programs", params.ProgramHandler.MountRoutes)
			r.Route("/goals", params.GoalHandler.MountRoutes)
			r.Route("/progress", params.ProgressHandler.MountRoutes)
			r.Route("/schedule", params.ScheduleHandler.MountRoutes)
			r.Route("/user", params.UserHandler.MountRoutes)
		})
	})

	return r
}
