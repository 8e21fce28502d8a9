package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-secure-vault/models"
)

// Field names accepted by [VaultValidator.Validate].
const (
	FieldID           = "id"
	FieldText         = "text"
	FieldPasskey      = "passkey"
	FieldCiphertext   = "ciphertext"
	FieldMasterSecret = "master_secret"
)

// VaultValidator validates StoreRequest, RetrieveRequest and
// ReauthorizeRequest values. Every failing field is reported: the returned
// error joins one sentinel per empty field.
type VaultValidator struct{}

// NewVaultValidator returns a [Validator] for vault requests.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. With no fields, every field of the request is
// checked.
func (v *VaultValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StoreRequest:
		return v.validateStore(value, fields...)
	case *models.StoreRequest:
		return v.validateStore(*value, fields...)

	case models.RetrieveRequest:
		return v.validateRetrieve(value, fields...)
	case *models.RetrieveRequest:
		return v.validateRetrieve(*value, fields...)

	case models.ReauthorizeRequest:
		return v.validateReauthorize(value, fields...)
	case *models.ReauthorizeRequest:
		return v.validateReauthorize(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateStore(req models.StoreRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldText, FieldPasskey}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldID:
			errs = appendIfEmpty(errs, req.ID, ErrEmptyID)
		case FieldText:
			errs = appendIfEmpty(errs, req.Text, ErrEmptyText)
		case FieldPasskey:
			errs = appendIfEmpty(errs, req.Passkey, ErrEmptyPasskey)
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

// validateRetrieve does not require the id by default: in combined match
// mode it is informational only.
func (v *VaultValidator) validateRetrieve(req models.RetrieveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCiphertext, FieldPasskey}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldID:
			errs = appendIfEmpty(errs, req.ID, ErrEmptyID)
		case FieldCiphertext:
			errs = appendIfEmpty(errs, req.Ciphertext, ErrEmptyCiphertext)
		case FieldPasskey:
			errs = appendIfEmpty(errs, req.Passkey, ErrEmptyPasskey)
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func (v *VaultValidator) validateReauthorize(req models.ReauthorizeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMasterSecret}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldMasterSecret:
			errs = appendIfEmpty(errs, req.MasterSecret, ErrEmptyMasterSecret)
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func appendIfEmpty(errs []error, value string, err error) []error {
	if value == "" {
		return append(errs, err)
	}
	return errs
}
