// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lockout implements the attempt-counting gate in front of
// retrievals. A [Guard] is Unlocked until the number of consecutive failed
// attempts reaches its threshold; it then refuses every attempt until a
// master-credential reauthorization or an administrative reset.
package lockout

import (
	"errors"
	"sync"

	"github.com/MKhiriev/go-secure-vault/internal/crypto"
	"github.com/MKhiriev/go-secure-vault/models"
)

// DefaultThreshold is the number of failures that locks a guard.
const DefaultThreshold = 3

// ErrLocked is returned by [Guard.Allow] while the guard is locked.
var ErrLocked = errors.New("too many failed attempts, reauthorization required")

// Guard tracks consecutive failed attempts. It is safe for concurrent use.
type Guard struct {
	mu        sync.Mutex
	failures  int
	locked    bool
	threshold int
	master    crypto.MasterVerifier
}

// NewGuard returns an Unlocked guard. A threshold below 1 falls back to
// [DefaultThreshold].
func NewGuard(threshold int, master crypto.MasterVerifier) *Guard {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Guard{threshold: threshold, master: master}
}

// Allow returns [ErrLocked] when the guard is locked. It does not count as
// an attempt.
func (g *Guard) Allow() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.locked {
		return ErrLocked
	}
	return nil
}

// RecordFailure counts one failed attempt, locking the guard when the
// threshold is reached, and returns the attempts remaining.
func (g *Guard) RecordFailure() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.failures++
	if g.failures >= g.threshold {
		g.locked = true
	}
	return g.remaining()
}

// RecordSuccess clears the failure counter.
func (g *Guard) RecordSuccess() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.failures = 0
}

// Reauthorize unlocks the guard and clears the counter when secret matches
// the master credential. A wrong secret changes nothing.
func (g *Guard) Reauthorize(secret string) bool {
	if g.master == nil || !g.master.Verify(secret) {
		return false
	}

	g.Reset()
	return true
}

// Reset unlocks the guard and clears the counter without any credential.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.failures = 0
	g.locked = false
}

// State returns a snapshot of the counter.
func (g *Guard) State() models.LockoutState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return models.LockoutState{FailedAttempts: g.failures, Authorized: !g.locked}
}

// Threshold returns the configured threshold.
func (g *Guard) Threshold() int {
	return g.threshold
}

// Remaining returns how many failures are left before the guard locks.
func (g *Guard) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.remaining()
}

func (g *Guard) remaining() int {
	return max(g.threshold-g.failures, 0)
}
