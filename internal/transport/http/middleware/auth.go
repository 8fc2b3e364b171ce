package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"blogapi/internal/httputil"
	"blogapi/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserKey is the context key for the authenticated *model.User
	UserKey contextKey = "user"
)

// TokenResolver turns a bearer token into the user it was issued to.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

// AuthMiddleware requires an "Authorization: Bearer <token>" header and
// stores the resolved user in the request context.
func AuthMiddleware(resolver TokenResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var user *model.User
			tokenString, err := bearerToken(r)
			if err == nil {
				user, err = resolver.ResolveToken(r.Context(), tokenString)
			}
			if err != nil {
				switch {
				case errors.Is(err, model.ErrMissingToken):
					httputil.WriteUnauthorized(w, "Not authenticated")
				case errors.Is(err, model.ErrTokenExpired):
					httputil.WriteUnauthorized(w, "Token has expired")
				case errors.Is(err, model.ErrTokenSignatureInvalid):
					httputil.WriteUnauthorized(w, "Invalid token signature")
				case errors.Is(err, model.ErrTokenMalformed), errors.Is(err, model.ErrTokenUserGone):
					httputil.WriteUnauthorized(w, "Could not validate credentials")
				default:
					logger.Error("failed to resolve token", zap.Error(err))
					httputil.WriteInternalError(w, "Internal server error")
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey).(*model.User)
	return user, ok && user != nil
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// bearerToken returns model.ErrMissingToken unless the request carries a
// non-empty "Bearer" credential.
func bearerToken(r *http.Request) (string, error) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", model.ErrMissingToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", model.ErrMissingToken
	}
	return token, nil
}
