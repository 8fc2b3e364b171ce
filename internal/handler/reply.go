package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"blogapi/internal/httputil"
	"blogapi/internal/model"
	"blogapi/internal/service"
)

type ReplyHandler struct {
	replyService *service.ReplyService
	logger       *zap.Logger
}

func NewReplyHandler(replyService *service.ReplyService, logger *zap.Logger) *ReplyHandler {
	return &ReplyHandler{
		replyService: replyService,
		logger:       logger,
	}
}

// Create handles POST /post/{id}/reply
func (h *ReplyHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	var req model.CreateReplyRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteBodyError(w, err)
		return
	}

	reply, err := h.replyService.Create(r.Context(), user, postID, req)
	if err != nil {
		h.writeError(w, err, "create reply failed", postID)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, reply)
}

// ListByPost handles GET /post/{id}/replies
func (h *ReplyHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}
	opts, ok := listOptions(w, r)
	if !ok {
		return
	}

	replies, err := h.replyService.ListByPost(r.Context(), postID, opts)
	if err != nil {
		h.writeError(w, err, "list post replies failed", postID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, replies)
}

// ListByUser handles GET /user/{id}/replies
func (h *ReplyHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}
	opts, ok := listOptions(w, r)
	if !ok {
		return
	}

	replies, err := h.replyService.ListByUser(r.Context(), userID, opts)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		h.logger.Error("list user replies failed", zap.Int64("user_id", userID), zap.Error(err))
		httputil.WriteInternalError(w, "Failed to list replies")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, replies)
}

// GetByID handles GET /reply/{id}
func (h *ReplyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	replyID, ok := pathID(w, r, "id", "reply")
	if !ok {
		return
	}

	reply, err := h.replyService.GetByID(r.Context(), replyID)
	if err != nil {
		h.writeError(w, err, "get reply failed", replyID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, reply)
}

// Update handles PUT /reply/{id}
func (h *ReplyHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	replyID, ok := pathID(w, r, "id", "reply")
	if !ok {
		return
	}

	var req model.UpdateReplyRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteBodyError(w, err)
		return
	}

	reply, err := h.replyService.Update(r.Context(), user.ID, replyID, req)
	if err != nil {
		h.writeError(w, err, "update reply failed", replyID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, reply)
}

// Delete handles DELETE /reply/{id}
func (h *ReplyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	replyID, ok := pathID(w, r, "id", "reply")
	if !ok {
		return
	}

	if err := h.replyService.Delete(r.Context(), user.ID, replyID); err != nil {
		h.writeError(w, err, "delete reply failed", replyID)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ReplyHandler) writeError(w http.ResponseWriter, err error, msg string, id int64) {
	switch {
	case errors.Is(err, model.ErrPostNotFound):
		httputil.WriteNotFound(w, "This post does not exist")
	case errors.Is(err, model.ErrReplyNotFound):
		httputil.WriteNotFound(w, "This reply does not exist")
	case errors.Is(err, model.ErrNotReplyOwner):
		httputil.WriteUnauthorized(w, "This reply belongs to another user")
	default:
		h.logger.Error(msg, zap.Int64("id", id), zap.Error(err))
		httputil.WriteInternalError(w, "Internal server error")
	}
}
