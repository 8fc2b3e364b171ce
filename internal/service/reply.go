package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

type ReplyService struct {
	replyRepo repository.ReplyRepository
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	logger    *zap.Logger
}

func NewReplyService(
	replyRepo repository.ReplyRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) *ReplyService {
	return &ReplyService{
		replyRepo: replyRepo,
		postRepo:  postRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Create adds a reply to an existing post.
func (s *ReplyService) Create(ctx context.Context, author *model.User, postID int64, req model.CreateReplyRequest) (*model.Reply, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	reply := &model.Reply{
		Body:     req.Body,
		UserID:   author.ID,
		Username: author.Username,
		PostID:   postID,
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	s.logger.Info("reply created",
		zap.Int64("reply_id", reply.ID),
		zap.Int64("post_id", postID),
		zap.Int64("user_id", author.ID),
	)
	return reply, nil
}

func (s *ReplyService) GetByID(ctx context.Context, replyID int64) (*model.Reply, error) {
	return s.replyRepo.GetByID(ctx, replyID)
}

func (s *ReplyService) Update(ctx context.Context, callerID, replyID int64, req model.UpdateReplyRequest) (*model.Reply, error) {
	reply, err := s.ownedReply(ctx, callerID, replyID)
	if err != nil {
		return nil, err
	}

	reply.Body = req.Body
	if err := s.replyRepo.Update(ctx, reply); err != nil {
		return nil, err
	}

	s.logger.Info("reply updated", zap.Int64("reply_id", replyID), zap.Int64("user_id", callerID))
	return reply, nil
}

func (s *ReplyService) Delete(ctx context.Context, callerID, replyID int64) error {
	if _, err := s.ownedReply(ctx, callerID, replyID); err != nil {
		return err
	}

	if err := s.replyRepo.Delete(ctx, replyID); err != nil {
		return err
	}

	s.logger.Info("reply deleted", zap.Int64("reply_id", replyID), zap.Int64("user_id", callerID))
	return nil
}

func (s *ReplyService) ListByPost(ctx context.Context, postID int64, opts model.ListOptions) ([]model.Reply, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.replyRepo.ListByPost(ctx, postID, opts)
}

func (s *ReplyService) ListByUser(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Reply, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.replyRepo.ListByUser(ctx, userID, opts)
}

func (s *ReplyService) requirePost(ctx context.Context, postID int64) error {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return fmt.Errorf("check post exists: %w", err)
	}
	if !exists {
		return model.ErrPostNotFound
	}
	return nil
}

func (s *ReplyService) ownedReply(ctx context.Context, callerID, replyID int64) (*model.Reply, error) {
	reply, err := s.replyRepo.GetByID(ctx, replyID)
	if err != nil {
		return nil, err
	}
	if reply.UserID != callerID {
		return nil, fmt.Errorf("reply %d: %w", replyID, model.ErrNotReplyOwner)
	}
	return reply, nil
}
