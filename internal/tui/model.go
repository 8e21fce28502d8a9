// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-vault/internal/app"
	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/internal/validators"
	"github.com/MKhiriev/go-secure-vault/models"
)

type screen int

const (
	screenHome screen = iota
	screenStore
	screenRetrieve
	screenReauth
	screenBuildInfo
)

const (
	storeFieldID = iota
	storeFieldText
	storeFieldPasskey
)

const (
	retrieveFieldID = iota
	retrieveFieldCiphertext
	retrieveFieldPasskey
)

type model struct {
	ctx       context.Context
	vault     service.VaultService
	validator validators.Validator
	copy      func(string) error
	buildInfo models.AppBuildInfo

	screen screen
	ids    []string
	status models.VaultStatus
	cursor int

	// ciphertexts holds the tokens stored during this run so the retrieve
	// form can prefill them.
	ciphertexts map[string]string

	storeForm    form
	stored       *models.StoreResult
	retrieveForm form
	plaintext    string
	reauthForm   form

	notice string
	errMsg string
	busy   bool
}

func newModel(ctx context.Context, vault service.VaultService, buildInfo models.AppBuildInfo) *model {
	return &model{
		ctx:         ctx,
		vault:       vault,
		validator:   validators.NewVaultValidator(),
		copy:        clipboard.WriteAll,
		buildInfo:   buildInfo,
		ciphertexts: make(map[string]string),
		storeForm: newForm(
			field{label: "ID", width: 40},
			field{label: "Data", width: 60},
			field{label: "Passkey", width: 40, secret: true},
		),
		retrieveForm: newForm(
			field{label: "ID", width: 40},
			field{label: "Encrypted", width: 60},
			field{label: "Passkey", width: 40, secret: true},
		),
		reauthForm: newForm(
			field{label: "Master password", width: 40, secret: true},
		),
	}
}

func (m *model) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.handleKey(msg)

	case refreshedMsg:
		m.onRefreshed(msg)
		return m, nil

	case storedMsg:
		return m, m.onStored(msg)

	case retrievedMsg:
		return m, m.onRetrieved(msg)

	case reauthorizedMsg:
		return m, m.onReauthorized(msg)

	case attemptsResetMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.switchTo(screenHome)
		m.notice = app.MsgAttemptsReset
		return m, m.cmdRefresh()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.notice = app.MsgCopied
		}
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.screen {
	case screenStore:
		return m.storeKey(msg)
	case screenRetrieve:
		return m.retrieveKey(msg)
	case screenReauth:
		return m.reauthKey(msg)
	case screenBuildInfo:
		return m.buildInfoKey(msg)
	default:
		return m.homeKey(msg)
	}
}

func (m *model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	switch m.screen {
	case screenStore:
		return m.storeForm.update(msg)
	case screenRetrieve:
		return m.retrieveForm.update(msg)
	case screenReauth:
		return m.reauthForm.update(msg)
	}
	return nil
}

// switchTo switches screens and clears transient feedback.
func (m *model) switchTo(s screen) {
	m.screen = s
	m.notice = ""
	m.errMsg = ""
}

func (m *model) onRefreshed(msg refreshedMsg) {
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return
	}

	m.ids = msg.ids
	m.status = msg.status
	if m.cursor >= len(m.ids) {
		m.cursor = max(len(m.ids)-1, 0)
	}

	switch {
	case !m.status.Authorized && m.screen != screenReauth:
		lastErr := m.errMsg
		m.switchTo(screenReauth)
		m.reauthForm.reset()
		m.errMsg = lastErr
	case m.status.Authorized && m.screen == screenReauth:
		m.switchTo(screenHome)
	}
}

func (m *model) View() string {
	switch m.screen {
	case screenStore:
		return m.storeView()
	case screenRetrieve:
		return m.retrieveView()
	case screenReauth:
		return m.reauthView()
	case screenBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	default:
		return m.homeView()
	}
}
