package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-vault/internal/app"
	"github.com/MKhiriev/go-secure-vault/models"
)

func (m *model) openStore() {
	m.switchTo(screenStore)
	m.stored = nil
	m.storeForm.reset()
}

func (m *model) storeKey(msg tea.KeyMsg) tea.Cmd {
	if m.stored != nil {
		switch {
		case key.Matches(msg, keys.copy):
			return m.cmdCopy(m.stored.Ciphertext)
		case key.Matches(msg, keys.newItem):
			m.openStore()
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.switchTo(screenHome)
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.switchTo(screenHome)
		return nil
	case key.Matches(msg, keys.tab):
		m.storeForm.focusNext()
		return nil
	case key.Matches(msg, keys.backtab):
		m.storeForm.focusPrev()
		return nil
	case key.Matches(msg, keys.enter):
		return m.submitStore()
	}

	return m.storeForm.update(msg)
}

func (m *model) submitStore() tea.Cmd {
	if m.busy {
		return nil
	}

	req := models.StoreRequest{
		ID:      strings.TrimSpace(m.storeForm.value(storeFieldID)),
		Text:    m.storeForm.value(storeFieldText),
		Passkey: m.storeForm.value(storeFieldPasskey),
	}
	if err := m.validator.Validate(m.ctx, req); err != nil {
		m.errMsg = app.MsgAllFieldsRequired
		return nil
	}

	m.errMsg = ""
	m.busy = true
	return m.cmdStore(req)
}

func (m *model) onStored(msg storedMsg) tea.Cmd {
	m.busy = false
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return nil
	}

	m.stored = &msg.result
	m.ciphertexts[msg.result.ID] = msg.result.Ciphertext
	m.notice = app.MsgStored
	m.errMsg = ""
	return m.cmdRefresh()
}

func (m *model) storeView() string {
	if m.stored != nil {
		body := "ID: " + m.stored.ID + "\n\nYour encrypted data:\n" + codeStyle.Render(m.stored.Ciphertext)
		return renderPage(
			"STORE DATA SECURELY",
			withFeedback(body, m.notice, m.errMsg),
			"c: copy encrypted data │ n: store another │ enter/esc: home",
		)
	}

	body := m.storeForm.View()
	if m.busy {
		body += "\n\n[Encrypting...]"
	} else {
		body += "\n\n[Encrypt & Save]"
	}

	return renderPage(
		"STORE DATA SECURELY",
		withFeedback(body, m.notice, m.errMsg),
		"esc: back │ tab: next field │ enter: encrypt & save",
	)
}
