// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the vault client. It works
// against any [service.VaultService]: the in-process engine or the remote
// adapter.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/models"
)

// TUI runs the vault screens.
type TUI struct {
	vault     service.VaultService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI over vault.
func New(vault service.VaultService, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{vault: vault, buildInfo: buildInfo, logger: log}
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.vault, t.buildInfo)

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui stopped with error")
		return err
	}
	return nil
}
