// Package mem keeps short-lived session state in process memory.
package mem

import (
	"sync"
	"time"
)

type RevokedTokenStore interface {
	// Revoke marks token as unusable until expiresAt. After that the token
	// is rejected by its own expiry claim and the entry can be dropped.
	Revoke(token string, expiresAt time.Time)

	IsRevoked(token string) bool

	// Purge drops entries whose expiry has passed and returns how many.
	Purge(now time.Time) int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = expiresAt
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	expiresAt, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.now().After(expiresAt) {
		s.mu.Lock()
		delete(s.data, token) // cleanup expired
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *RevokedTokens) Purge(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, token)
			n++
		}
	}
	return n
}
