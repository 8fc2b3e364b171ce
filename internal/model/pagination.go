package model

import (
	"errors"
	"fmt"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 25
)

var ErrInvalidPagination = errors.New("invalid pagination")

// ListOptions controls paging and ordering for every list query.
type ListOptions struct {
	Skip        int
	Limit       int
	NewestFirst bool
}

func DefaultListOptions() ListOptions {
	return ListOptions{Skip: 0, Limit: DefaultListLimit, NewestFirst: true}
}

func (o ListOptions) Validate() error {
	if o.Skip < 0 {
		return fmt.Errorf("%w: skip must be >= 0", ErrInvalidPagination)
	}
	if o.Limit < 0 || o.Limit > MaxListLimit {
		return fmt.Errorf("%w: limit must be between 0 and %d", ErrInvalidPagination, MaxListLimit)
	}
	return nil
}

// OrderDirection returns the SQL keyword for the creation-time ordering.
func (o ListOptions) OrderDirection() string {
	if o.NewestFirst {
		return "DESC"
	}
	return "ASC"
}
