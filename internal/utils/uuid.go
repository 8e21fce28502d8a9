package utils

import "github.com/google/uuid"

// SessionIDGenerator issues session ids. Ids are random (v4) UUIDs, so they
// carry no creation time.
type SessionIDGenerator struct{}

func NewSessionIDGenerator() *SessionIDGenerator {
	return &SessionIDGenerator{}
}

func (g *SessionIDGenerator) Generate() string {
	return uuid.NewString()
}
