package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-secure-vault/models"
)

func TestVaultValidator_StoreRequest(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		req      any
		wantErrs []error
	}{
		{name: "valid", req: models.StoreRequest{ID: "note1", Text: "hello", Passkey: "pw1"}},
		{name: "valid pointer", req: &models.StoreRequest{ID: "note1", Text: "hello", Passkey: "pw1"}},
		{name: "missing id", req: models.StoreRequest{Text: "hello", Passkey: "pw1"}, wantErrs: []error{ErrEmptyID}},
		{name: "all missing", req: models.StoreRequest{}, wantErrs: []error{ErrEmptyID, ErrEmptyText, ErrEmptyPasskey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestVaultValidator_RetrieveRequest(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RetrieveRequest{Ciphertext: "C1", Passkey: "pw1"}), "id optional by default")
	assert.ErrorIs(t, v.Validate(ctx, models.RetrieveRequest{Ciphertext: "C1", Passkey: "pw1"}, FieldID, FieldCiphertext, FieldPasskey), ErrEmptyID)
	assert.ErrorIs(t, v.Validate(ctx, &models.RetrieveRequest{ID: "x", Passkey: "pw1"}), ErrEmptyCiphertext)
	assert.ErrorIs(t, v.Validate(ctx, models.RetrieveRequest{ID: "x", Ciphertext: "C1"}), ErrEmptyPasskey)
}

func TestVaultValidator_ReauthorizeRequest(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ReauthorizeRequest{MasterSecret: "m"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.ReauthorizeRequest{}), ErrEmptyMasterSecret)
}

func TestVaultValidator_Errors(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.StoreRequest{}, "color"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.RetrieveRequest{}, "color"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.ReauthorizeRequest{}, FieldID), ErrUnknownField)
}
