package crypto

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type plainVerifier struct {
	secret []byte
}

type bcryptVerifier struct {
	hash []byte
}

// NewMasterVerifier builds a [MasterVerifier] from the configured
// credential. A bcrypt hash takes precedence over a plain password.
func NewMasterVerifier(password, hash string) (MasterVerifier, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMasterHash, err)
		}
		return &bcryptVerifier{hash: []byte(hash)}, nil
	}
	if password == "" {
		return nil, ErrNoMasterCredential
	}

	return &plainVerifier{secret: []byte(password)}, nil
}

// Verify compares in constant time.
func (v *plainVerifier) Verify(secret string) bool {
	return subtle.ConstantTimeCompare(v.secret, []byte(secret)) == 1
}

func (v *bcryptVerifier) Verify(secret string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(secret)) == nil
}
