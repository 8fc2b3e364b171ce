package handler

import (
	"errors"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"blogapi/internal/httputil"
	"blogapi/internal/metrics"
	"blogapi/internal/model"
	"blogapi/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, m *metrics.Metrics, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		metrics:     m,
		logger:      logger,
	}
}

// Token handles POST /token
// Accepts the OAuth2 password form or a JSON body and returns a bearer token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLogin(r)
	if err != nil {
		httputil.WriteBodyError(w, err)
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			h.recordLogin(metrics.LoginFailure)
			httputil.WriteUnauthorized(w, "Invalid Username or Password")
			return
		}
		h.logger.Error("authenticate failed", zap.String("username", req.Username), zap.Error(err))
		httputil.WriteInternalError(w, "Internal server error")
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		h.logger.Error("issue token failed", zap.Int64("user_id", user.ID), zap.Error(err))
		httputil.WriteInternalError(w, "Internal server error")
		return
	}

	h.recordLogin(metrics.LoginSuccess)
	httputil.WriteJSON(w, http.StatusOK, model.TokenResponse{
		AccessToken: token,
		TokenType:   model.TokenTypeBearer,
	})
}

func (h *AuthHandler) recordLogin(outcome string) {
	if h.metrics != nil {
		h.metrics.LoginAttempts.WithLabelValues(outcome).Inc()
	}
}

func decodeLogin(r *http.Request) (*model.LoginRequest, error) {
	var req model.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := httputil.ParseForm(r); err != nil {
		return nil, err
	}
	req.Username = r.PostForm.Get("username")
	req.Password = r.PostForm.Get("password")
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}
	return &req, nil
}
