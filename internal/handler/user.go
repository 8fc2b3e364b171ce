package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"blogapi/internal/httputil"
	"blogapi/internal/model"
	"blogapi/internal/service"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register handles POST /user
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteBodyError(w, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPasswordTooLong):
			httputil.WriteValidationError(w, "password must be at most 72 bytes")
		case errors.Is(err, model.ErrUsernameTaken):
			httputil.WriteConflict(w, "Username is taken, please try another")
		case errors.Is(err, model.ErrEmailTaken):
			httputil.WriteConflict(w, "Email is taken, please try another")
		default:
			h.logger.Error("register failed", zap.String("username", req.Username), zap.Error(err))
			httputil.WriteInternalError(w, "Failed to register user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, user)
}

// Me handles GET /user/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

// GetByID handles GET /user/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		h.logger.Error("get user failed", zap.Int64("user_id", userID), zap.Error(err))
		httputil.WriteInternalError(w, "Failed to get user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

// DeleteMe handles DELETE /user/me and removes everything the caller owns.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), user.ID); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		h.logger.Error("delete user failed", zap.Int64("user_id", user.ID), zap.Error(err))
		httputil.WriteInternalError(w, "Failed to delete user")
		return
	}

	httputil.WriteNoContent(w)
}
