package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"blogapi/internal/config"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// TokenClaims is the payload of an access token.
type TokenClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService verifies credentials and issues and resolves access tokens.
type AuthService struct {
	users  repository.UserRepository
	config *config.Config
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthService(users repository.UserRepository, cfg *config.Config, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Authenticate returns ErrInvalidCredentials when the user is unknown or the
// password does not match. The two cases are indistinguishable to callers.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHashed) {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) IssueToken(user *model.User) (string, error) {
	now := s.now()
	claims := TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature, structure and expiry.
func (s *AuthService) ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.config.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, model.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, model.ErrTokenSignatureInvalid
		default:
			return nil, model.ErrTokenMalformed
		}
	}

	if claims.UserID <= 0 {
		return nil, model.ErrTokenMalformed
	}
	return claims, nil
}

// ResolveToken parses the token and loads the user it names.
func (s *AuthService) ResolveToken(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.logger.Debug("token subject no longer exists", zap.Int64("user_id", claims.UserID))
			return nil, model.ErrTokenUserGone
		}
		return nil, fmt.Errorf("failed to load token user: %w", err)
	}
	return user, nil
}
