// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"birthday-blog/internal/repository"
	"birthday-blog/internal/service"
	"birthday-blog/internal/util"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	manager *repository.Manager
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(manager *repository.Manager, svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		manager: manager,
		service: svc,
		logger:  logger,
	}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles the user registration request.
// POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, fmt.Errorf("%w: malformed JSON body", util.ErrInvalidInput))
		return
	}
	if err := checkRequest(req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	hdl, err := h.manager.Acquire(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	defer h.manager.Release(hdl)

	if _, err := h.service.Register(r.Context(), hdl.Users(), req.Username, req.Password); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the user login request. Unknown usernames and wrong passwords
// both answer 401 so the endpoint cannot be used to enumerate accounts.
// POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, fmt.Errorf("%w: malformed JSON body", util.ErrInvalidInput))
		return
	}
	if err := checkRequest(req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	hdl, err := h.manager.Acquire(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	defer h.manager.Release(hdl)

	user, err := h.service.Login(r.Context(), hdl.Users(), req.Username, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, messageResponse{
		Message:  "Login successful",
		Username: user.Username,
	})
}

// ResetPasswordRequest represents the request body for a password reset.
type ResetPasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ResetPassword handles the password reset request.
// POST /users/reset-password
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, fmt.Errorf("%w: malformed JSON body", util.ErrInvalidInput))
		return
	}
	if err := checkRequest(req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	hdl, err := h.manager.Acquire(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	defer h.manager.Release(hdl)

	if err := h.service.ResetPassword(r.Context(), hdl.Users(), req.Username, req.NewPassword); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, messageResponse{Message: "Password reset successfully"})
}

// checkUsernameResponse is the envelope for username availability checks.
type checkUsernameResponse struct {
	Exists bool `json:"exists"`
}

// CheckUsername handles the username availability request.
// GET /users/check-username?username=...
func (h *UserHandler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		respondWithError(w, h.logger, util.NewValidationError("username"))
		return
	}

	hdl, err := h.manager.Acquire(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	defer h.manager.Release(hdl)

	exists, err := h.service.CheckUsername(r.Context(), hdl.Users(), username)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, checkUsernameResponse{Exists: exists})
}
