package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// UserService handles business logic for user operations
type UserService struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// Register creates a new user account after the identity checks pass.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if len(req.Password) > model.MaxPasswordBytes {
		return nil, model.ErrPasswordTooLong
	}

	if err := s.ValidateNewIdentity(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHashed: hashed,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// ValidateNewIdentity rejects a username or email that is already in use,
// ignoring case. The username is checked first.
func (s *UserService) ValidateNewIdentity(ctx context.Context, username, email string) error {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return model.ErrUsernameTaken
	}

	exists, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return model.ErrEmailTaken
	}

	return nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the account along with everything it owns.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}
