package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"blogapi/internal/httputil"
	"blogapi/internal/model"
	"blogapi/internal/service"
)

type FollowHandler struct {
	followService *service.FollowService
	logger        *zap.Logger
}

func NewFollowHandler(followService *service.FollowService, logger *zap.Logger) *FollowHandler {
	return &FollowHandler{
		followService: followService,
		logger:        logger,
	}
}

// Follow handles POST /user/follow/{id}
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	follower, ok := currentUser(w, r)
	if !ok {
		return
	}
	followeeID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	followee, err := h.followService.Follow(r.Context(), follower, followeeID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCannotFollowSelf):
			httputil.WriteValidationError(w, "You cannot follow yourself")
		case errors.Is(err, model.ErrAlreadyFollowing):
			httputil.WriteConflict(w, "User already followed")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			h.logger.Error("follow failed",
				zap.Int64("follower_id", follower.ID),
				zap.Int64("followee_id", followeeID),
				zap.Error(err),
			)
			httputil.WriteInternalError(w, "Failed to follow user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.MessageResponse{
		Detail: fmt.Sprintf("%s now following %s", follower.Username, followee.Username),
	})
}

// Unfollow handles DELETE /user/follow/{id}
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	follower, ok := currentUser(w, r)
	if !ok {
		return
	}
	followeeID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	if err := h.followService.Unfollow(r.Context(), follower.ID, followeeID); err != nil {
		if errors.Is(err, model.ErrNotFollowing) {
			httputil.WriteNotFound(w, "You are not following this user")
			return
		}
		h.logger.Error("unfollow failed",
			zap.Int64("follower_id", follower.ID),
			zap.Int64("followee_id", followeeID),
			zap.Error(err),
		)
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}

	httputil.WriteNoContent(w)
}

// GetFollowers handles GET /user/{id}/followers
func (h *FollowHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.followService.Followers, "get followers failed")
}

// GetFollowing handles GET /user/{id}/following
func (h *FollowHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.followService.Following, "get following failed")
}

type userLister func(ctx context.Context, userID int64) ([]model.User, error)

func (h *FollowHandler) list(w http.ResponseWriter, r *http.Request, fetch userLister, msg string) {
	userID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	users, err := fetch(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		h.logger.Error(msg, zap.Int64("user_id", userID), zap.Error(err))
		httputil.WriteInternalError(w, "Internal server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}
