package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the session
	// token. The session has expired or was closed; open a new one.
	ErrUnauthorized = errors.New("client unauthorized")

	ErrInternalServerError = errors.New("internal server error")

	// ErrServiceUnavailable is returned when the server refuses new work,
	// for example when its session cap is reached.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrRequestTooLarge is returned when the server rejects a request body
	// as oversized.
	ErrRequestTooLarge = errors.New("request too large")

	// ErrInvalidAddress is returned for an adapter address without a host.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
