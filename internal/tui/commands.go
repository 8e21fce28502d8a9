package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-vault/models"
)

func (m *model) cmdRefresh() tea.Cmd {
	ctx, vault := m.ctx, m.vault

	return func() tea.Msg {
		ids, err := vault.ListIDs(ctx)
		if err != nil {
			return refreshedMsg{err: err}
		}
		status, err := vault.GetStatus(ctx)
		return refreshedMsg{ids: ids, status: status, err: err}
	}
}

func (m *model) cmdStore(req models.StoreRequest) tea.Cmd {
	ctx, vault := m.ctx, m.vault

	return func() tea.Msg {
		res, err := vault.Store(ctx, req)
		return storedMsg{result: res, err: err}
	}
}

func (m *model) cmdRetrieve(req models.RetrieveRequest) tea.Cmd {
	ctx, vault := m.ctx, m.vault

	return func() tea.Msg {
		res, err := vault.Retrieve(ctx, req)
		return retrievedMsg{result: res, err: err}
	}
}

func (m *model) cmdReauthorize(secret string) tea.Cmd {
	ctx, vault := m.ctx, m.vault

	return func() tea.Msg {
		ok, err := vault.Reauthorize(ctx, secret)
		return reauthorizedMsg{ok: ok, err: err}
	}
}

func (m *model) cmdResetAttempts() tea.Cmd {
	ctx, vault := m.ctx, m.vault

	return func() tea.Msg {
		return attemptsResetMsg{err: vault.ResetAttempts(ctx)}
	}
}

func (m *model) cmdCopy(text string) tea.Cmd {
	copyFn := m.copy

	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}
