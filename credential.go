package batchgen

import (
	"log/slog"
	"sync"
)

// KeySource supplies the credential in effect at the moment of a provider
// call. Generators that build a fresh client per call read from a KeySource
// so the most recently selected credential always applies.
type KeySource interface {
	CurrentKey() string
}

// KeyStore is a live, concurrency-safe credential holder. It implements both
// KeySource and CredentialGate: selecting a new key takes effect on the very
// next generation call, with no cached client left holding a stale key.
type KeyStore struct {
	mu  sync.RWMutex
	key string
}

// Ensure KeyStore satisfies both collaborator contracts.
var (
	_ KeySource      = (*KeyStore)(nil)
	_ CredentialGate = (*KeyStore)(nil)
)

// NewKeyStore creates a KeyStore holding the given key. An empty key is
// valid; HasUsableCredential reports false until one is selected.
func NewKeyStore(key string) *KeyStore {
	return &KeyStore{key: key}
}

// Select replaces the current key.
func (s *KeyStore) Select(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
}

// CurrentKey returns the key currently in effect.
func (s *KeyStore) CurrentKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

// HasUsableCredential reports whether a non-empty key is selected.
func (s *KeyStore) HasUsableCredential() bool {
	return s.CurrentKey() != ""
}

// PromptForCredential logs a hint about where to configure a key. A KeyStore
// has no interactive surface of its own, so this is best effort.
func (s *KeyStore) PromptForCredential() {
	slog.Warn("no API key selected; set GEMINI_API_KEY or call KeyStore.Select")
}
