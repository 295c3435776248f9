package mem

import (
	"sync"
	"time"
)

// OtpStore keeps short-lived one-time codes keyed by email, in memory.
// Codes are single-use: Consume removes on success.
type OtpStore interface {
	Set(email string, code string, ttl time.Duration)

	// Consume returns true and removes the code when it matches and has not
	// expired. A wrong code does not consume the stored one.
	Consume(email string, code string) bool

	Peek(email string) (string, bool)
}

type otpEntry struct {
	code      string
	expiresAt time.Time
}

type OtpTokens struct {
	mu   sync.RWMutex
	data map[string]otpEntry
}

func NewOtpTokens() *OtpTokens {
	return &OtpTokens{
		data: make(map[string]otpEntry),
	}
}

func (s *OtpTokens) Set(email string, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[email] = otpEntry{
		code:      code,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *OtpTokens) Consume(email string, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[email]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, email)
		return false
	}
	if e.code != code {
		return false
	}
	delete(s.data, email) // single-use
	return true
}

func (s *OtpTokens) Peek(email string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[email]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.code, true
}
