// Package config loads, merges and validates the vault configuration.
//
// Sources are applied in this order, later non-zero fields winning:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//
// Defaults fill whatever is still empty. [GetStructuredConfig] returns the
// server view, [GetClientConfig] the terminal client view.
package config
