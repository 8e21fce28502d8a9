package tui

import "github.com/MKhiriev/go-secure-vault/models"

type refreshedMsg struct {
	ids    []string
	status models.VaultStatus
	err    error
}

type storedMsg struct {
	result models.StoreResult
	err    error
}

type retrievedMsg struct {
	result models.RetrieveResult
	err    error
}

type reauthorizedMsg struct {
	ok  bool
	err error
}

type attemptsResetMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
