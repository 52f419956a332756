// Package otp holds pending one-time passwords. The state is process-wide
// and not persisted: codes do not survive a restart, which is acceptable for
// a five-minute credential.
package otp

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrNotPending covers both "no code was ever issued" and "the code
	// expired" — callers must not be able to tell whether an address ever
	// had a pending OTP.
	ErrNotPending = errors.New("OTP expired or not found")
	ErrMismatch   = errors.New("invalid OTP")
)

// Record is a pending one-time password for a recipient address.
type Record struct {
	Address   string
	Code      string
	ExpiresAt time.Time
}

// Store keeps at most one pending OTP per address. Put replaces any pending
// record wholesale; Consume is an atomic verify-then-delete so a code can be
// redeemed at most once. Implementations must be safe for concurrent use.
type Store interface {
	Put(rec Record)
	Consume(address, code string, now time.Time) error
	Delete(address string)
}

// MemoryStore is the in-process Store. A single mutex guards the map: both
// the issue (overwrite) and the verify-then-delete sequence happen under it,
// so concurrent issuance is last-write-wins and concurrent verification of
// the same code succeeds at most once. Expiry is lazy — stale records stay
// until replaced or consumed, bounded by the set of addresses ever used.
type MemoryStore struct {
	mu      sync.Mutex
	pending map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pending: make(map[string]Record)}
}

func (s *MemoryStore) Put(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[rec.Address] = rec
}

func (s *MemoryStore) Consume(address, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.pending[address]
	if !ok || now.After(rec.ExpiresAt) {
		return ErrNotPending
	}
	if rec.Code != code {
		return ErrMismatch
	}
	delete(s.pending, address)
	return nil
}

func (s *MemoryStore) Delete(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, address)
}
