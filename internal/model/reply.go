package model

import (
	"errors"
	"time"
)

type Reply struct {
	ID           int64      `db:"id" json:"id"`
	Body         string     `db:"body" json:"body"`
	DateCreated  time.Time  `db:"date_created" json:"date_created"`
	DateModified *time.Time `db:"date_modified" json:"date_modified"`
	UserID       int64      `db:"user_id" json:"user_id"`
	Username     string     `db:"username" json:"username"`
	PostID       int64      `db:"post_id" json:"post_id"`
}

type CreateReplyRequest struct {
	Body string `json:"body" validate:"required"`
}

type UpdateReplyRequest struct {
	Body string `json:"body" validate:"required"`
}

var (
	ErrReplyNotFound = errors.New("reply not found")
	ErrNotReplyOwner = errors.New("not the owner of this reply")
)
