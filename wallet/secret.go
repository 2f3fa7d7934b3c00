package wallet

import (
	"sync"

	vcrypto "github.com/hweb3/go-accounts/crypto"
)

// SecretBuffer owns a copy of private key bytes until Wipe is called.
type SecretBuffer struct {
	mu    sync.Mutex
	bytes []byte
}

// NewSecretBuffer copies b; the caller keeps ownership of b and should wipe it.
func NewSecretBuffer(b []byte) *SecretBuffer {
	owned := make([]byte, len(b))
	copy(owned, b)
	return &SecretBuffer{bytes: owned}
}

// Use hands the live bytes to f. f must not retain them.
func (s *SecretBuffer) Use(f func(b []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bytes == nil {
		return errWiped
	}
	return f(s.bytes)
}

// Wipe zeroes the buffer and releases it. Later calls are no-ops.
func (s *SecretBuffer) Wipe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	vcrypto.ZeroBytes(s.bytes)
	s.bytes = nil
}

func (s *SecretBuffer) Wiped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bytes == nil
}
