package crypto

// PasskeyHasher turns a passkey into a digest that can be stored and
// compared in place of the passkey itself.
type PasskeyHasher interface {
	// Hash returns the lowercase hex digest of passkey. It is deterministic
	// and never fails; the empty string is a valid input.
	Hash(passkey string) string
}

// CipherService encrypts and decrypts text payloads with a single key that
// lives for the lifetime of the service.
type CipherService interface {
	// Encrypt returns an opaque, URL-safe token. Two calls with the same
	// plaintext return different tokens.
	Encrypt(plaintext string) (string, error)

	// Decrypt recovers the plaintext of a token produced by Encrypt on the
	// same service. Any other input fails with [ErrDecryption].
	Decrypt(token string) (string, error)
}

// MasterVerifier checks a reauthorization secret against the configured
// master credential.
type MasterVerifier interface {
	Verify(secret string) bool
}
