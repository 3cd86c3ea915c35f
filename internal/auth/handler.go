package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pulsefit/pulsefit/internal/platform/httpx"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers the public auth routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

// MountProtectedRoutes registers auth routes that require a valid token.
func (h *Handler) MountProtectedRoutes(r chi.Router) {
	r.Post("/refresh", h.handleRefresh)
	r.Post("/logout", h.handleLogout)
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=50"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.FirstValidationMessage(err))
		return
	}

	user, token, err := h.service.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.Warn("register failed", slog.String("email", NormalizeEmail(req.Email)), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, tokenResponse{Token: token, User: user})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, httpx.FirstValidationMessage(err))
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, tokenResponse{Token: token, User: user})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	token, err := h.service.Refresh(r.Context(), identity)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// Tokens are stateless, so logout has no server-side effect.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.Message(w, http.StatusOK, "logged out")
}
