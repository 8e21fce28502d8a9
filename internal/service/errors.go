package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation wraps every request validation failure. The joined
	// field errors from the validators package are wrapped alongside it.
	ErrValidation = errors.New("invalid request")

	// ErrNotFoundOrWrongPasskey is returned when a retrieval matches no
	// entry. It deliberately does not say whether the id, the ciphertext
	// or the passkey was wrong.
	ErrNotFoundOrWrongPasskey = errors.New("entry not found or wrong passkey")

	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrTokenCreationFailed = errors.New("session token creation failed")

	// ErrTooManySessions is returned by Open when the live session cap is
	// reached.
	ErrTooManySessions = errors.New("too many open sessions")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// NotFoundOrWrongPasskeyError carries the attempts left before the session
// locks. It matches [ErrNotFoundOrWrongPasskey] with errors.Is.
type NotFoundOrWrongPasskeyError struct {
	AttemptsRemaining int
}

func (e *NotFoundOrWrongPasskeyError) Error() string {
	return fmt.Sprintf("%s (attempts remaining: %d)", ErrNotFoundOrWrongPasskey, e.AttemptsRemaining)
}

func (e *NotFoundOrWrongPasskeyError) Unwrap() error {
	return ErrNotFoundOrWrongPasskey
}

// AttemptsRemaining extracts the remaining attempts from err. ok is false
// when err is not a [NotFoundOrWrongPasskeyError].
func AttemptsRemaining(err error) (remaining int, ok bool) {
	var target *NotFoundOrWrongPasskeyError
	if errors.As(err, &target) {
		return target.AttemptsRemaining, true
	}
	return 0, false
}
