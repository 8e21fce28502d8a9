// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shown by the
// terminal client. Keeping them in one place keeps the wording consistent
// across screens.
package app

const (
	// MsgAllFieldsRequired is shown when a form is submitted with empty
	// fields.
	MsgAllFieldsRequired = "All fields are required!"

	// MsgDuplicateID is shown when a store request reuses an existing id.
	MsgDuplicateID = "This ID already exists! Please choose a different ID."

	// MsgIncorrectPasskey is a format string taking the attempts remaining.
	MsgIncorrectPasskey = "Incorrect passkey! Attempts remaining: %d"

	// MsgLocked is shown on the reauthorization screen.
	MsgLocked = "Too many failed attempts. Please reauthorize to continue."

	MsgIncorrectMasterPassword = "Incorrect password!"
	MsgMasterPasswordRequired  = "Master password is required!"

	// MsgDecryptionFailed is shown when a matched entry cannot be decrypted.
	MsgDecryptionFailed = "Error decrypting data. The encrypted text may be corrupted."

	MsgServerUnavailable = "Network is down or the server is unavailable"
	MsgSessionExpired    = "Session expired. Restart the client to open a new one."
	MsgServerBusy        = "The server has too many open sessions. Try again later."
	MsgNoDataStored      = "No data stored yet. Press s to add your first encrypted entry."

	MsgStored        = "Data stored securely!"
	MsgDecrypted     = "Data decrypted successfully!"
	MsgReauthorized  = "Reauthorized successfully!"
	MsgAttemptsReset = "Attempts reset!"
	MsgCopied        = "Encrypted data copied to clipboard."
)
