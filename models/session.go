package models

import "time"

// Session identifies one isolated vault context on the server.
type Session struct {
	ID        string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}

// SessionResponse is returned when a session is opened.
type SessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
}
