package exercises

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Handler wires the public, read-only catalog endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers catalog routes. No auth required.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := Filter{
		MuscleGroup: strings.TrimSpace(r.URL.Query().Get("muscle_group")),
		Search:      strings.TrimSpace(r.URL.Query().Get("search")),
	}
	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list exercises failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httpx.Error(w, http.StatusBadRequest, "invalid exercise id")
		return
	}
	exercise, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, exercise)
}
