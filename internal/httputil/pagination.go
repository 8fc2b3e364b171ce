package httputil

import (
	"fmt"
	"net/url"
	"strconv"

	"blogapi/internal/model"
)

// Query parameter names. The hyphenated sort flag is the public name; the
// underscore form is accepted as well.
const (
	QuerySkip           = "skip"
	QueryLimit          = "limit"
	QueryNewestFirst    = "sort-newest-first"
	QueryNewestFirstAlt = "sort_newest_first"
)

// ParseListOptions reads skip, limit and the sort flag, applying defaults for
// absent values. Invalid values wrap model.ErrInvalidPagination.
func ParseListOptions(q url.Values) (model.ListOptions, error) {
	opts := model.DefaultListOptions()

	if v := q.Get(QuerySkip); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("%w: skip must be an integer", model.ErrInvalidPagination)
		}
		opts.Skip = n
	}

	if v := q.Get(QueryLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("%w: limit must be an integer", model.ErrInvalidPagination)
		}
		opts.Limit = n
	}

	sort := q.Get(QueryNewestFirst)
	if sort == "" {
		sort = q.Get(QueryNewestFirstAlt)
	}
	if sort != "" {
		b, err := strconv.ParseBool(sort)
		if err != nil {
			return opts, fmt.Errorf("%w: %s must be a boolean", model.ErrInvalidPagination, QueryNewestFirst)
		}
		opts.NewestFirst = b
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
