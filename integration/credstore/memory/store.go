package memory

import (
	"context"
	"sync"

	"github.com/dmitrymomot/bewit/core/bewit"
)

// Store is an in-memory credential store keyed by key id. It is safe for
// concurrent use and suitable for tests, single-process deployments, and as
// a read-through cache in front of a persistent store.
type Store struct {
	mu    sync.RWMutex
	creds map[string]bewit.Credential
}

// New creates an empty in-memory credential store.
func New() *Store {
	return &Store{creds: make(map[string]bewit.Credential)}
}

// Put registers a credential under its key id, replacing any previous entry.
// The secret bytes are copied so later mutations of the caller's slice do
// not leak into the store.
func (s *Store) Put(cred bewit.Credential) error {
	if cred.KeyID == "" {
		return ErrEmptyKeyID
	}

	key := make([]byte, len(cred.Key))
	copy(key, cred.Key)
	cred.Key = key

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[cred.KeyID] = cred
	return nil
}

// Delete removes the credential for the key id. Deleting an unknown key id
// is a no-op.
func (s *Store) Delete(keyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, keyID)
}

// Resolve returns the credential for the key id, or nil when unknown. The
// returned credential holds a copy of the secret.
func (s *Store) Resolve(ctx context.Context, keyID string) (*bewit.Credential, error) {
	s.mu.RLock()
	cred, ok := s.creds[keyID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	key := make([]byte, len(cred.Key))
	copy(key, cred.Key)
	cred.Key = key
	return &cred, nil
}

// Resolver adapts the store to the resolver capability expected by
// bewit.ValidateWithResolver.
func (s *Store) Resolver() bewit.ResolverFunc {
	return s.Resolve
}

// Len reports the number of stored credentials.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.creds)
}
