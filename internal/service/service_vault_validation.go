package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/validators"
	"github.com/MKhiriev/go-secure-vault/models"
)

// VaultValidationService rejects incomplete requests with [ErrValidation]
// before they reach the engine, so they never consume an attempt.
type VaultValidationService struct {
	inner          VaultService
	validator      validators.Validator
	retrieveFields []string
}

// NewVaultValidationService builds the validation wrapper. In strict match
// mode a retrieval must name its id.
func NewVaultValidationService(matchMode string) VaultServiceWrapper {
	fields := []string{validators.FieldCiphertext, validators.FieldPasskey}
	if matchMode != config.MatchModeCombined {
		fields = append([]string{validators.FieldID}, fields...)
	}

	return &VaultValidationService{
		validator:      validators.NewVaultValidator(),
		retrieveFields: fields,
	}
}

func (v *VaultValidationService) Store(ctx context.Context, req models.StoreRequest) (models.StoreResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.StoreResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Store(ctx, req)
}

func (v *VaultValidationService) Retrieve(ctx context.Context, req models.RetrieveRequest) (models.RetrieveResult, error) {
	if err := v.validator.Validate(ctx, req, v.retrieveFields...); err != nil {
		return models.RetrieveResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Retrieve(ctx, req)
}

// Reauthorize is not validated: an empty secret is simply a wrong one.
func (v *VaultValidationService) Reauthorize(ctx context.Context, masterSecret string) (bool, error) {
	return v.inner.Reauthorize(ctx, masterSecret)
}

func (v *VaultValidationService) ResetAttempts(ctx context.Context) error {
	return v.inner.ResetAttempts(ctx)
}

func (v *VaultValidationService) ListIDs(ctx context.Context) ([]string, error) {
	return v.inner.ListIDs(ctx)
}

func (v *VaultValidationService) GetStatus(ctx context.Context) (models.VaultStatus, error) {
	return v.inner.GetStatus(ctx)
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}
