package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, logger *zap.Logger) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *PostService) Create(ctx context.Context, author *model.User, req model.CreatePostRequest) (*model.Post, error) {
	post := &model.Post{
		Title:    req.Title,
		Body:     req.Body,
		UserID:   author.ID,
		Username: author.Username,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created", zap.Int64("post_id", post.ID), zap.Int64("user_id", author.ID))
	return post, nil
}

func (s *PostService) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// Update applies the non-empty fields of req. Missing posts fail before the
// ownership check.
func (s *PostService) Update(ctx context.Context, callerID, postID int64, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.ownedPost(ctx, callerID, postID)
	if err != nil {
		return nil, err
	}

	req.Apply(post)
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post updated", zap.Int64("post_id", postID), zap.Int64("user_id", callerID))
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, callerID, postID int64) error {
	if _, err := s.ownedPost(ctx, callerID, postID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info("post deleted", zap.Int64("post_id", postID), zap.Int64("user_id", callerID))
	return nil
}

// ListByUser returns the user's posts. Unknown users yield ErrUserNotFound.
func (s *PostService) ListByUser(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Post, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByUser(ctx, userID, opts)
}

func (s *PostService) ownedPost(ctx context.Context, callerID, postID int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, fmt.Errorf("post %d: %w", postID, model.ErrNotPostOwner)
	}
	return post, nil
}
