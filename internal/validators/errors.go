package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID           = errors.New("id is required")
	ErrEmptyText         = errors.New("text is required")
	ErrEmptyPasskey      = errors.New("passkey is required")
	ErrEmptyCiphertext   = errors.New("ciphertext is required")
	ErrEmptyMasterSecret = errors.New("master secret is required")
)
