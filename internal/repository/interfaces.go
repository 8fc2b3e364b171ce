package repository

import (
	"context"

	"blogapi/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByUsername matches case-insensitively.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Delete removes the user together with their replies, posts and follow edges.
	Delete(ctx context.Context, id int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	// Update persists title and body and stamps date_modified.
	Update(ctx context.Context, post *model.Post) error
	// Delete removes the post and its replies.
	Delete(ctx context.Context, postID int64) error
	Exists(ctx context.Context, postID int64) (bool, error)
	ListRecent(ctx context.Context, opts model.ListOptions) ([]model.Post, error)
	ListByUser(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Post, error)
	// ListByFollowees returns posts written by users that followerID follows.
	ListByFollowees(ctx context.Context, followerID int64, opts model.ListOptions) ([]model.Post, error)
}

type ReplyRepository interface {
	Create(ctx context.Context, reply *model.Reply) error
	GetByID(ctx context.Context, replyID int64) (*model.Reply, error)
	Update(ctx context.Context, reply *model.Reply) error
	Delete(ctx context.Context, replyID int64) error
	ListByPost(ctx context.Context, postID int64, opts model.ListOptions) ([]model.Reply, error)
	ListByUser(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Reply, error)
}

type FollowRepository interface {
	// Create reports false when the edge already exists.
	Create(ctx context.Context, followerID, followeeID int64) (bool, error)
	Delete(ctx context.Context, followerID, followeeID int64) error
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
	GetFollowers(ctx context.Context, userID int64) ([]model.User, error)
	GetFollowing(ctx context.Context, userID int64) ([]model.User, error)
}
