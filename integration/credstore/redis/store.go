package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/bewit/core/bewit"
)

// storedCredential is the JSON shape persisted in Redis. The secret is
// base64-encoded by encoding/json's []byte handling.
type storedCredential struct {
	KeyID     string `json:"key_id"`
	Key       []byte `json:"key"`
	Algorithm string `json:"algorithm"`
}

// Store persists bewit credentials in Redis, one JSON value per key id.
// It implements the resolver capability of the bewit core, so a validator
// shared by many issuers can look secrets up by the key id embedded in the
// token.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// NewStore creates a credential store on top of an established client.
// keyPrefix namespaces the Redis keys; an empty prefix falls back to
// "bewit:credential:".
func NewStore(client redis.UniversalClient, keyPrefix string) *Store {
	if keyPrefix == "" {
		keyPrefix = "bewit:credential:"
	}
	return &Store{client: client, prefix: keyPrefix}
}

// Put stores the credential under its key id. A zero ttl keeps the
// credential until it is deleted; a positive ttl lets Redis expire it,
// which is a convenient way to retire rotated keys.
func (s *Store) Put(ctx context.Context, cred bewit.Credential, ttl time.Duration) error {
	if cred.KeyID == "" {
		return ErrEmptyKeyID
	}

	payload, err := json.Marshal(storedCredential{
		KeyID:     cred.KeyID,
		Key:       cred.Key,
		Algorithm: string(cred.Algorithm),
	})
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}

	return s.client.Set(ctx, s.prefix+cred.KeyID, payload, ttl).Err()
}

// Delete removes the credential for the key id. Deleting an unknown key id
// is a no-op.
func (s *Store) Delete(ctx context.Context, keyID string) error {
	return s.client.Del(ctx, s.prefix+keyID).Err()
}

// Resolve returns the credential for the key id, or nil when the key is
// unknown or expired. Corrupt stored values are reported as
// ErrMalformedCredential rather than treated as unknown, so operational
// problems stay visible.
func (s *Store) Resolve(ctx context.Context, keyID string) (*bewit.Credential, error) {
	payload, err := s.client.Get(ctx, s.prefix+keyID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis lookup for key id %q: %w", keyID, err)
	}

	var stored storedCredential
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("%w: key id %q: %v", ErrMalformedCredential, keyID, err)
	}

	return &bewit.Credential{
		KeyID:     stored.KeyID,
		Key:       stored.Key,
		Algorithm: bewit.Algorithm(stored.Algorithm),
	}, nil
}

// Resolver adapts the store to the resolver capability expected by
// bewit.ValidateWithResolver.
func (s *Store) Resolver() bewit.ResolverFunc {
	return s.Resolve
}
