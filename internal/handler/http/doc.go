// Package http implements the REST transport of the vault server.
//
// It wires chi routes to the service layer. Requests under /api/vault carry
// a session token in the Authorization header; the session middleware
// resolves it to a session id before the vault handlers run. Trace ids and
// access logging are attached to every request.
package http
