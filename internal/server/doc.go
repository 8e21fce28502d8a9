// Package server runs the vault's HTTP server together with its background
// workers and shuts both down on SIGINT, SIGTERM or SIGQUIT.
package server
