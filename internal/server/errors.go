package server

import "errors"

var (
	// errNoHTTPHandler is returned by NewServer without a vault API handler
	// or a listen address.
	errNoHTTPHandler = errors.New("vault api handler is not configured")
	// errNoServersToRun is returned by run when NewServer was bypassed.
	errNoServersToRun = errors.New("no servers to run")
)
