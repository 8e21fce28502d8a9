package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-secure-vault/internal/app"
)

func (m *model) homeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.ids)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.store):
		m.openStore()
	case key.Matches(msg, keys.enter):
		if len(m.ids) == 0 {
			m.notice = app.MsgNoDataStored
			return nil
		}
		m.openRetrieve(m.ids[m.cursor])
	case key.Matches(msg, keys.reset):
		m.busy = true
		return m.cmdResetAttempts()
	case key.Matches(msg, keys.info):
		m.switchTo(screenBuildInfo)
	}
	return nil
}

func (m *model) homeView() string {
	var b strings.Builder
	b.WriteString("Securely store and retrieve data using unique passkeys.\n")
	b.WriteString("Your data is encrypted and can only be accessed with the correct passkey.\n\n")

	if len(m.ids) == 0 {
		b.WriteString(app.MsgNoDataStored)
	} else {
		b.WriteString("Currently stored data IDs:\n")
		for i, id := range m.ids {
			line := fmt.Sprintf("%d. %s", i+1, fitText(id, 48))
			if i == m.cursor {
				line = selectStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.TrimRight(b.String(), "\n"),
		sidebarStyle.Render(m.statusPanel()),
	)

	return renderPage(
		"SECURE DATA ENCRYPTION SYSTEM",
		withFeedback(body, m.notice, m.errMsg),
		"↑/↓: select │ enter: retrieve │ s: store │ r: reset attempts │ v: about │ q: quit",
	)
}

func (m *model) statusPanel() string {
	return fmt.Sprintf("System status\nFailed attempts: %d/%d\nStored entries: %d",
		m.status.FailedAttempts, m.status.Threshold, m.status.EntryCount)
}
