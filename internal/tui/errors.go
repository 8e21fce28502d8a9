package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-vault/internal/app"
	"github.com/MKhiriev/go-secure-vault/internal/crypto"
	"github.com/MKhiriev/go-secure-vault/internal/lockout"
	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/internal/store"
)

// humanizeError turns a vault error into the line shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if remaining, ok := service.AttemptsRemaining(err); ok {
		return fmt.Sprintf(app.MsgIncorrectPasskey, remaining)
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		return app.MsgAllFieldsRequired
	case errors.Is(err, store.ErrDuplicateID):
		return app.MsgDuplicateID
	case errors.Is(err, lockout.ErrLocked):
		return app.MsgLocked
	case errors.Is(err, crypto.ErrDecryption):
		return app.MsgDecryptionFailed
	case errors.Is(err, service.ErrSessionNotFound):
		return app.MsgSessionExpired
	case errors.Is(err, service.ErrTooManySessions):
		return app.MsgServerBusy
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}
