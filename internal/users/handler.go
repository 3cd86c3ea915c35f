package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pulsefit/pulsefit/internal/auth"
	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the user profile, workout log, and
// exercise weight defaults.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers user routes; the auth middleware is applied upstream.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/initial-data", h.initialData)
	r.Get("/profile", h.profile)
	r.Put("/profile", h.updateProfile)
	r.Get("/log", h.listLog)
	r.Post("/log", h.appendLog)
	r.Put("/exercise-weight", h.setExerciseWeight)
}

func (h *Handler) initialData(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	data, err := h.service.InitialData(r.Context(), identity.ID)
	if err != nil {
		h.logger.Error("initial data failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, data)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	profile, err := h.service.Profile(r.Context(), identity.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.FirstValidationMessage(err))
		return
	}
	profile, err := h.service.UpdateProfile(r.Context(), identity.ID, req)
	if err != nil {
		h.logger.Error("update profile failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}

func (h *Handler) listLog(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	log, err := h.service.Log(r.Context(), identity.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, log)
}

func (h *Handler) appendLog(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req AppendLogEntryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.FirstValidationMessage(err))
		return
	}
	entry, err := h.service.AppendLog(r.Context(), identity.ID, req)
	if err != nil {
		h.logger.Error("append log failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, entry)
}

func (h *Handler) setExerciseWeight(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req UpdateExerciseWeightRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.FirstValidationMessage(err))
		return
	}
	updated, err := h.service.SetExerciseWeight(r.Context(), identity.ID, req)
	if err != nil {
		h.logger.Error("set exercise weight failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"exercise_id":      req.ExerciseID,
		"weight":           req.Weight,
		"workouts_updated": updated,
	})
}
