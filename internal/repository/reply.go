package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogapi/internal/model"
)

const replyColumns = "id, body, date_created, date_modified, user_id, username, post_id"

type replyRepository struct {
	db *sqlx.DB
}

func NewReplyRepository(db *sqlx.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *model.Reply) error {
	query := `
		INSERT INTO replies (body, user_id, username, post_id, date_created)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, date_created
	`
	err := r.db.QueryRowxContext(ctx, query, reply.Body, reply.UserID, reply.Username, reply.PostID).
		Scan(&reply.ID, &reply.DateCreated)
	if err != nil {
		return fmt.Errorf("insert reply: %w", err)
	}
	reply.DateModified = nil
	return nil
}

func (r *replyRepository) GetByID(ctx context.Context, replyID int64) (*model.Reply, error) {
	query := `SELECT ` + replyColumns + ` FROM replies WHERE id = $1`

	var reply model.Reply
	err := r.db.GetContext(ctx, &reply, query, replyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrReplyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reply: %w", err)
	}
	return &reply, nil
}

func (r *replyRepository) Update(ctx context.Context, reply *model.Reply) error {
	query := `
		UPDATE replies SET body = $1, date_modified = NOW()
		WHERE id = $2
		RETURNING date_modified
	`
	err := r.db.QueryRowxContext(ctx, query, reply.Body, reply.ID).Scan(&reply.DateModified)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrReplyNotFound
	}
	if err != nil {
		return fmt.Errorf("update reply: %w", err)
	}
	return nil
}

func (r *replyRepository) Delete(ctx context.Context, replyID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM replies WHERE id = $1`, replyID)
	if err != nil {
		return fmt.Errorf("delete reply: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrReplyNotFound
	}
	return nil
}

func (r *replyRepository) ListByPost(ctx context.Context, postID int64, opts model.ListOptions) ([]model.Reply, error) {
	dir := opts.OrderDirection()
	query := fmt.Sprintf(`
		SELECT %s FROM replies
		WHERE post_id = $1
		ORDER BY date_created %s, id %s
		LIMIT $2 OFFSET $3
	`, replyColumns, dir, dir)

	return r.list(ctx, query, postID, opts.Limit, opts.Skip)
}

func (r *replyRepository) ListByUser(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Reply, error) {
	dir := opts.OrderDirection()
	query := fmt.Sprintf(`
		SELECT %s FROM replies
		WHERE user_id = $1
		ORDER BY date_created %s, id %s
		LIMIT $2 OFFSET $3
	`, replyColumns, dir, dir)

	return r.list(ctx, query, userID, opts.Limit, opts.Skip)
}

func (r *replyRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Reply, error) {
	replies := make([]model.Reply, 0)
	if err := r.db.SelectContext(ctx, &replies, query, args...); err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return replies, nil
}
