// internal/api/handler/blog.go
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

// BlogHandler handles HTTP requests for blog posts. Each request acquires a
// store handle from the connection manager, performs one operation, and
// always releases the handle before returning.
type BlogHandler struct {
	manager *repository.Manager
	service service.BlogService
	logger  *slog.Logger
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(manager *repository.Manager, svc service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		manager: manager,
		service: svc,
		logger:  logger,
	}
}

// List handles the list blogs request.
// GET /blogs
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	hdl, err := h.manager.Acquire(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	defer h.manager.Release(hdl)

	posts, err := h.service.List(r.Context(), hdl.Blogs())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, posts)
}

// CreateBlogRequest represents the request body for creating a blog post.
type CreateBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Create handles the create blog request.
// POST /blogs
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogRequest
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

	post, err := h.service.Create(r.Context(), hdl.Blogs(), req.Title, req.Content)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, post)
}

// UpdateBlogRequest represents the request body for a full blog update.
type UpdateBlogRequest struct {
	ID      string `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Update handles the update blog request.
// PUT /blogs
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBlogRequest
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

	if err := h.service.Update(r.Context(), hdl.Blogs(), req.ID, req.Title, req.Content); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, successResponse{Success: true})
}

// Delete handles the delete blog request.
// DELETE /blogs?id=...
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondWithError(w, h.logger, util.NewValidationError("id"))
		return
	}

	hdl, err := h.manager.Acquire(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	defer h.manager.Release(hdl)

	if err := h.service.Delete(r.Context(), hdl.Blogs(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, successResponse{Success: true})
}
