package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewMasterVerifier_Plain(t *testing.T) {
	v, err := NewMasterVerifier("open sesame", "")
	require.NoError(t, err)

	assert.True(t, v.Verify("open sesame"))
	assert.False(t, v.Verify("open sesame "))
	assert.False(t, v.Verify(""))
}

func TestNewMasterVerifier_Bcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("master"), bcrypt.MinCost)
	require.NoError(t, err)

	v, err := NewMasterVerifier("ignored", string(hash))
	require.NoError(t, err)

	assert.True(t, v.Verify("master"))
	assert.False(t, v.Verify("ignored"))
}

func TestNewMasterVerifier_Errors(t *testing.T) {
	_, err := NewMasterVerifier("", "")
	assert.ErrorIs(t, err, ErrNoMasterCredential)

	_, err = NewMasterVerifier("", "not-a-bcrypt-hash")
	assert.ErrorIs(t, err, ErrInvalidMasterHash)
}
