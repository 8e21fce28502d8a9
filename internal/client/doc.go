// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It picks the vault the terminal UI talks to: the engine running in this
// process, or a remote vault server reached through the HTTP adapter.
package client
