package service

import (
	"context"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// FeedService serves the global and social post timelines.
type FeedService struct {
	postRepo repository.PostRepository
}

func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

func (s *FeedService) Recent(ctx context.Context, opts model.ListOptions) ([]model.Post, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return s.postRepo.ListRecent(ctx, opts)
}

// Following returns posts by the users that userID follows.
func (s *FeedService) Following(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Post, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return s.postRepo.ListByFollowees(ctx, userID, opts)
}
