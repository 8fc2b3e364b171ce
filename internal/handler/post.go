package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"blogapi/internal/httputil"
	"blogapi/internal/model"
	"blogapi/internal/service"
)

type PostHandler struct {
	postService *service.PostService
	logger      *zap.Logger
}

func NewPostHandler(postService *service.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// Create handles POST /post
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req model.CreatePostRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteBodyError(w, err)
		return
	}

	post, err := h.postService.Create(r.Context(), user, req)
	if err != nil {
		h.logger.Error("create post failed", zap.Int64("user_id", user.ID), zap.Error(err))
		httputil.WriteInternalError(w, "Failed to create post")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}

// GetByID handles GET /post/{id}
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		h.writeError(w, err, "get post failed", postID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// Update handles PUT /post/{id}
// Only the fields present and non-empty in the body change.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	var req model.UpdatePostRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteBodyError(w, err)
		return
	}

	post, err := h.postService.Update(r.Context(), user.ID, postID, req)
	if err != nil {
		h.writeError(w, err, "update post failed", postID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /post/{id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	if err := h.postService.Delete(r.Context(), user.ID, postID); err != nil {
		h.writeError(w, err, "delete post failed", postID)
		return
	}

	httputil.WriteNoContent(w)
}

// ListByUser handles GET /user/{id}/posts
func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}
	opts, ok := listOptions(w, r)
	if !ok {
		return
	}

	posts, err := h.postService.ListByUser(r.Context(), userID, opts)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		h.logger.Error("list user posts failed", zap.Int64("user_id", userID), zap.Error(err))
		httputil.WriteInternalError(w, "Failed to list posts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) writeError(w http.ResponseWriter, err error, msg string, postID int64) {
	switch {
	case errors.Is(err, model.ErrPostNotFound):
		httputil.WriteNotFound(w, "This post does not exist")
	case errors.Is(err, model.ErrNotPostOwner):
		httputil.WriteUnauthorized(w, "This post belongs to another user")
	default:
		h.logger.Error(msg, zap.Int64("post_id", postID), zap.Error(err))
		httputil.WriteInternalError(w, "Internal server error")
	}
}
