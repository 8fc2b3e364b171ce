package handler

import (
	"net/http"

	"go.uber.org/zap"

	"blogapi/internal/httputil"
	"blogapi/internal/service"
)

type FeedHandler struct {
	feedService *service.FeedService
	logger      *zap.Logger
}

func NewFeedHandler(feedService *service.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		logger:      logger,
	}
}

// Recent handles GET /posts/recent
func (h *FeedHandler) Recent(w http.ResponseWriter, r *http.Request) {
	opts, ok := listOptions(w, r)
	if !ok {
		return
	}

	posts, err := h.feedService.Recent(r.Context(), opts)
	if err != nil {
		h.logger.Error("recent feed failed", zap.Error(err))
		httputil.WriteInternalError(w, "Failed to get posts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, posts)
}

// Following handles GET /posts/following
// Returns posts by the users the caller follows.
func (h *FeedHandler) Following(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	opts, ok := listOptions(w, r)
	if !ok {
		return
	}

	posts, err := h.feedService.Following(r.Context(), user.ID, opts)
	if err != nil {
		h.logger.Error("following feed failed", zap.Int64("user_id", user.ID), zap.Error(err))
		httputil.WriteInternalError(w, "Failed to get feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, posts)
}
