package crypto

import "errors"

var (
	// ErrDecryption is returned by [CipherService.Decrypt] when a token is
	// malformed, was produced under another key, or has been tampered with.
	ErrDecryption = errors.New("ciphertext could not be decrypted")

	// ErrNoMasterCredential is returned when neither a plain master
	// password nor a bcrypt hash was configured.
	ErrNoMasterCredential = errors.New("no master credential configured")

	// ErrInvalidMasterHash is returned when the configured master hash is
	// not a bcrypt hash.
	ErrInvalidMasterHash = errors.New("invalid master password hash")
)
