package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-vault/models"
)

func (m *model) buildInfoKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
		m.switchTo(screenHome)
	}
	return nil
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := "Application: go-secure-vault\n" + strings.Join(info.Lines(), "\n")
	return renderPage("ABOUT", body, "esc: back")
}
