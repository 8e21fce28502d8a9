// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entry is one stored payload. It is immutable once inserted: there is no
// update path, and inserting an existing ID is an error.
type Entry struct {
	// ID is the user-chosen identifier, unique within a session.
	ID string `json:"id"`

	// Ciphertext is the opaque authenticated-encryption token of the text.
	Ciphertext string `json:"ciphertext"`

	// Digest is the hex SHA-256 digest of the passkey used at store time.
	// It never leaves the engine.
	Digest string `json:"-"`

	// CreatedAt is the insertion time.
	CreatedAt time.Time `json:"created_at"`
}
