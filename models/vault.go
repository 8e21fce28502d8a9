// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StoreRequest asks the vault to encrypt Text and keep it under ID.
type StoreRequest struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Passkey string `json:"passkey"`
}

// StoreResult carries the token the caller needs to retrieve the entry.
type StoreResult struct {
	ID         string `json:"id"`
	Ciphertext string `json:"ciphertext"`
}

// RetrieveRequest asks the vault to decrypt a stored entry.
type RetrieveRequest struct {
	ID         string `json:"id"`
	Ciphertext string `json:"ciphertext"`
	Passkey    string `json:"passkey"`
}

// RetrieveResult carries the recovered plaintext.
type RetrieveResult struct {
	ID        string `json:"id"`
	Plaintext string `json:"plaintext"`
}

// ReauthorizeRequest carries the master secret that clears a lockout.
type ReauthorizeRequest struct {
	MasterSecret string `json:"master_secret"`
}

// ReauthorizeResponse reports whether the lockout was cleared.
type ReauthorizeResponse struct {
	Authorized bool `json:"authorized"`
}

// IDList is the ordered list of stored ids.
type IDList struct {
	IDs []string `json:"ids"`
}

// ErrorResponse is the JSON body of every failed API call.
// AttemptsRemaining is set only for failed retrievals.
type ErrorResponse struct {
	Error             string `json:"error"`
	AttemptsRemaining *int   `json:"attempts_remaining,omitempty"`
}
