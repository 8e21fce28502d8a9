// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
)

const (
	// keySize selects AES-256.
	keySize = 32

	// tokenVersion is the first byte of every token.
	tokenVersion byte = 0x01
)

var tokenEncoding = base64.RawURLEncoding

// gcmCipherService is the AES-256-GCM implementation of [CipherService].
// The key is sealed in a memguard enclave and only unsealed for the
// duration of a single Encrypt or Decrypt call.
type gcmCipherService struct {
	key *memguard.Enclave
}

// NewCipherService generates a fresh random key and returns a
// [CipherService] bound to it. The key is never exported.
func NewCipherService() CipherService {
	return &gcmCipherService{key: memguard.NewEnclaveRandom(keySize)}
}

// newCipherServiceFromKey is used by tests that need two services sharing
// the same key. The caller's slice is wiped.
func newCipherServiceFromKey(key []byte) CipherService {
	return &gcmCipherService{key: memguard.NewEnclave(key)}
}

// Encrypt implements [CipherService]. The token layout is
// base64url(version || nonce || sealed text with tag).
func (c *gcmCipherService) Encrypt(plaintext string) (string, error) {
	gcm, release, err := c.aead()
	if err != nil {
		return "", err
	}
	defer release()

	blob := make([]byte, 1+gcm.NonceSize(), 1+gcm.NonceSize()+len(plaintext)+gcm.Overhead())
	blob[0] = tokenVersion
	nonce := blob[1:]
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error generating nonce: %w", err)
	}

	blob = gcm.Seal(blob, nonce, []byte(plaintext), blob[:1])
	return tokenEncoding.EncodeToString(blob), nil
}

// Decrypt implements [CipherService].
func (c *gcmCipherService) Decrypt(token string) (string, error) {
	blob, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: not a valid token encoding", ErrDecryption)
	}

	gcm, release, err := c.aead()
	if err != nil {
		return "", err
	}
	defer release()

	if len(blob) < 1+gcm.NonceSize()+gcm.Overhead() {
		return "", fmt.Errorf("%w: token too short", ErrDecryption)
	}
	if blob[0] != tokenVersion {
		return "", fmt.Errorf("%w: unknown token version %d", ErrDecryption, blob[0])
	}

	nonce, sealed := blob[1:1+gcm.NonceSize()], blob[1+gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, blob[:1])
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", ErrDecryption)
	}

	return string(plaintext), nil
}

// aead unseals the key and builds a GCM instance. The returned release
// func destroys the unsealed key buffer.
func (c *gcmCipherService) aead() (cipher.AEAD, func(), error) {
	buf, err := c.key.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("error opening key enclave: %w", err)
	}

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		buf.Destroy()
		return nil, nil, fmt.Errorf("error creating cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		buf.Destroy()
		return nil, nil, fmt.Errorf("error creating gcm: %w", err)
	}

	return gcm, buf.Destroy, nil
}
