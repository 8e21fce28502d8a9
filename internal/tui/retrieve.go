package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-vault/internal/app"
	"github.com/MKhiriev/go-secure-vault/internal/validators"
	"github.com/MKhiriev/go-secure-vault/models"
)

// openRetrieve prefills the form with id and, when it was stored in this
// run, its ciphertext. Focus lands on the first empty field.
func (m *model) openRetrieve(id string) {
	m.switchTo(screenRetrieve)
	m.plaintext = ""
	m.retrieveForm.reset()
	m.retrieveForm.setValue(retrieveFieldID, id)

	if ciphertext, ok := m.ciphertexts[id]; ok {
		m.retrieveForm.setValue(retrieveFieldCiphertext, ciphertext)
		m.retrieveForm.focusOn(retrieveFieldPasskey)
		return
	}
	m.retrieveForm.focusOn(retrieveFieldCiphertext)
}

func (m *model) retrieveKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.switchTo(screenHome)
		return nil
	case key.Matches(msg, keys.tab):
		m.retrieveForm.focusNext()
		return nil
	case key.Matches(msg, keys.backtab):
		m.retrieveForm.focusPrev()
		return nil
	case key.Matches(msg, keys.enter):
		return m.submitRetrieve()
	}

	return m.retrieveForm.update(msg)
}

func (m *model) submitRetrieve() tea.Cmd {
	if m.busy {
		return nil
	}

	req := models.RetrieveRequest{
		ID:         strings.TrimSpace(m.retrieveForm.value(retrieveFieldID)),
		Ciphertext: strings.TrimSpace(m.retrieveForm.value(retrieveFieldCiphertext)),
		Passkey:    m.retrieveForm.value(retrieveFieldPasskey),
	}
	if err := m.validator.Validate(m.ctx, req, validators.FieldCiphertext, validators.FieldPasskey); err != nil {
		m.errMsg = app.MsgAllFieldsRequired
		return nil
	}

	m.notice, m.errMsg, m.plaintext = "", "", ""
	m.busy = true
	return m.cmdRetrieve(req)
}

// onRetrieved shows the plaintext or the failure. A failure refreshes the
// status, which moves to the reauthorization screen once the session locks.
func (m *model) onRetrieved(msg retrievedMsg) tea.Cmd {
	m.busy = false
	m.retrieveForm.setValue(retrieveFieldPasskey, "")

	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m.cmdRefresh()
	}

	m.plaintext = msg.result.Plaintext
	m.notice = app.MsgDecrypted
	return m.cmdRefresh()
}

func (m *model) retrieveView() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("You have %d stored data entries.\n\n", len(m.ids)))
	b.WriteString(m.retrieveForm.View())

	if m.busy {
		b.WriteString("\n\n[Decrypting...]")
	} else {
		b.WriteString("\n\n[Decrypt]")
	}

	body := withFeedback(b.String(), m.notice, m.errMsg)
	if m.plaintext != "" {
		body += "\n\nDecrypted data:\n" + codeStyle.Render(m.plaintext)
	}

	return renderPage("RETRIEVE YOUR DATA", body, "esc: back │ tab: next field │ enter: decrypt")
}
