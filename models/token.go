package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a session token: an HS256 JWT whose subject is the session id.
//
// It embeds [jwt.RegisteredClaims] so it can be passed straight to
// jwt.ParseWithClaims.
type Token struct {
	// Token is the parsed or freshly built JWT.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// SessionID is a cached copy of the subject claim.
	SessionID string `json:"-"`
}

// GetSessionID returns the subject claim.
func (t *Token) GetSessionID() (string, error) {
	sessionID, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sessionID == "" {
		return "", errors.New("empty session id in token")
	}

	return sessionID, nil
}

// String returns the compact serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
