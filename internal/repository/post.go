package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogapi/internal/model"
)

const postColumns = "id, title, body, date_created, date_modified, user_id, username"

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post and fills in its id and creation time.
func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (title, body, user_id, username, date_created)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, date_created
	`
	err := r.db.QueryRowxContext(ctx, query, p.Title, p.Body, p.UserID, p.Username).
		Scan(&p.ID, &p.DateCreated)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	p.DateModified = nil
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var post model.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, p *model.Post) error {
	query := `
		UPDATE posts SET title = $1, body = $2, date_modified = NOW()
		WHERE id = $3
		RETURNING date_modified
	`
	err := r.db.QueryRowxContext(ctx, query, p.Title, p.Body, p.ID).Scan(&p.DateModified)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM replies WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("delete post replies: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Exists checks if a post exists
func (r *postRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
	if err != nil {
		return false, fmt.Errorf("check post exists: %w", err)
	}
	return exists, nil
}

func (r *postRepository) ListRecent(ctx context.Context, opts model.ListOptions) ([]model.Post, error) {
	dir := opts.OrderDirection()
	query := fmt.Sprintf(`
		SELECT %s FROM posts
		ORDER BY date_created %s, id %s
		LIMIT $1 OFFSET $2
	`, postColumns, dir, dir)

	return r.list(ctx, query, opts.Limit, opts.Skip)
}

func (r *postRepository) ListByUser(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Post, error) {
	dir := opts.OrderDirection()
	query := fmt.Sprintf(`
		SELECT %s FROM posts
		WHERE user_id = $1
		ORDER BY date_created %s, id %s
		LIMIT $2 OFFSET $3
	`, postColumns, dir, dir)

	return r.list(ctx, query, userID, opts.Limit, opts.Skip)
}

func (r *postRepository) ListByFollowees(ctx context.Context, followerID int64, opts model.ListOptions) ([]model.Post, error) {
	dir := opts.OrderDirection()
	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.body, p.date_created, p.date_modified, p.user_id, p.username
		FROM posts p
		JOIN user_follows f ON f.followee_id = p.user_id
		WHERE f.follower_id = $1
		ORDER BY p.date_created %s, p.id %s
		LIMIT $2 OFFSET $3
	`, dir, dir)

	return r.list(ctx, query, followerID, opts.Limit, opts.Skip)
}

func (r *postRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Post, error) {
	posts := make([]model.Post, 0)
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
