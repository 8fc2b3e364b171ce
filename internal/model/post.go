package model

import (
	"errors"
	"time"
)

// Post is a titled blog entry. Username is denormalized from the author.
type Post struct {
	ID           int64      `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Body         string     `db:"body" json:"body"`
	DateCreated  time.Time  `db:"date_created" json:"date_created"`
	DateModified *time.Time `db:"date_modified" json:"date_modified"`
	UserID       int64      `db:"user_id" json:"user_id"`
	Username     string     `db:"username" json:"username"`
}

// CreatePostRequest is the request body for creating a post.
type CreatePostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// UpdatePostRequest only changes fields that are present and non-empty.
type UpdatePostRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// Apply merges the request into p.
func (r UpdatePostRequest) Apply(p *Post) {
	if r.Title != nil && *r.Title != "" {
		p.Title = *r.Title
	}
	if r.Body != nil && *r.Body != "" {
		p.Body = *r.Body
	}
}

// Post errors
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the owner of this post")
)
