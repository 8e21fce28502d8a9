package handler

import "errors"

// errNoHTTPAddress means the server config leaves the vault API without a
// listen address. HTTP is the only transport, so startup fails.
var errNoHTTPAddress = errors.New("http address is not configured")
