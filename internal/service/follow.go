package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	logger     *zap.Logger
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, logger *zap.Logger) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Follow creates the edge follower -> followeeID and returns the followee.
func (s *FollowService) Follow(ctx context.Context, follower *model.User, followeeID int64) (*model.User, error) {
	if follower.ID == followeeID {
		return nil, model.ErrCannotFollowSelf
	}

	followee, err := s.userRepo.GetByID(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	inserted, err := s.followRepo.Create(ctx, follower.ID, followeeID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, model.ErrAlreadyFollowing
	}

	s.logger.Info("user followed",
		zap.Int64("follower_id", follower.ID),
		zap.Int64("followee_id", followeeID),
	)
	return followee, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	exists, err := s.followRepo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("check follow exists: %w", err)
	}
	if !exists {
		return model.ErrNotFollowing
	}

	if err := s.followRepo.Delete(ctx, followerID, followeeID); err != nil {
		return err
	}

	s.logger.Info("user unfollowed",
		zap.Int64("follower_id", followerID),
		zap.Int64("followee_id", followeeID),
	)
	return nil
}

func (s *FollowService) Followers(ctx context.Context, userID int64) ([]model.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID int64) ([]model.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(ctx, userID)
}
