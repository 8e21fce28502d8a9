package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-vault/internal/app"
	"github.com/MKhiriev/go-secure-vault/models"
)

func (m *model) reauthKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter):
		return m.submitReauth()
	case key.Matches(msg, keys.resetAlt):
		m.busy = true
		return m.cmdResetAttempts()
	}

	return m.reauthForm.update(msg)
}

func (m *model) submitReauth() tea.Cmd {
	if m.busy {
		return nil
	}

	req := models.ReauthorizeRequest{MasterSecret: m.reauthForm.value(0)}
	if err := m.validator.Validate(m.ctx, req); err != nil {
		m.errMsg = app.MsgMasterPasswordRequired
		return nil
	}

	m.busy = true
	return m.cmdReauthorize(req.MasterSecret)
}

func (m *model) onReauthorized(msg reauthorizedMsg) tea.Cmd {
	m.busy = false
	m.reauthForm.reset()

	switch {
	case msg.err != nil:
		m.errMsg = humanizeError(msg.err)
		return nil
	case !msg.ok:
		m.errMsg = app.MsgIncorrectMasterPassword
		return nil
	}

	m.switchTo(screenHome)
	m.notice = app.MsgReauthorized
	return m.cmdRefresh()
}

func (m *model) reauthView() string {
	body := app.MsgLocked + "\n\n" + m.reauthForm.View()
	return renderPage(
		"REAUTHORIZATION REQUIRED",
		withFeedback(body, m.notice, m.errMsg),
		"enter: login │ ctrl+r: reset attempts",
	)
}
