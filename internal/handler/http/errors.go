package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a vault request has no
	// Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestTooLarge is returned when a request body exceeds the limit.
	ErrRequestTooLarge = errors.New("request body too large")
)
