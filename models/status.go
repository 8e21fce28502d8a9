package models

// LockoutState is the attempt counter of one session.
// Authorized is false exactly when FailedAttempts reached the threshold and
// no reauthorization happened since.
type LockoutState struct {
	FailedAttempts int  `json:"failed_attempts"`
	Authorized     bool `json:"authorized"`
}

// VaultStatus is the status panel of one session.
type VaultStatus struct {
	LockoutState

	// Threshold is the number of failures that locks the session.
	Threshold int `json:"threshold"`

	// AttemptsRemaining is Threshold minus FailedAttempts, never negative.
	AttemptsRemaining int `json:"attempts_remaining"`

	// EntryCount is the number of stored entries.
	EntryCount int `json:"entry_count"`
}
