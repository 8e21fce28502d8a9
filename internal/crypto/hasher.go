package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

type sha256Hasher struct{}

// NewPasskeyHasher returns a [PasskeyHasher] producing 64-character hex
// SHA-256 digests.
func NewPasskeyHasher() PasskeyHasher {
	return sha256Hasher{}
}

func (sha256Hasher) Hash(passkey string) string {
	sum := sha256.Sum256([]byte(passkey))
	return hex.EncodeToString(sum[:])
}
