package model

import "errors"

// Token errors. All of them are reported to clients as 401.
var (
	ErrMissingToken          = errors.New("missing bearer token")
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenUserGone         = errors.New("token subject no longer exists")
)
