package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/bewit/core/bewit"
)

// DefaultSecretLen is the secret size used by NewCredential: 32 bytes, the
// HMAC-SHA256 block-independent key size recommended for the scheme.
const DefaultSecretLen = 32

// ErrInvalidSecretLen is returned for non-positive secret lengths.
var ErrInvalidSecretLen = errors.New("secret length must be positive")

// NewKeyID returns a fresh key id: a UUIDv4 string. UUIDs are URL-safe and
// never contain the reserved token separator, so ids produced here cannot
// trip the codec's documented separator gap.
func NewKeyID() string {
	return uuid.NewString()
}

// NewSecret returns n cryptographically random bytes.
func NewSecret(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSecretLen, n)
	}
	secret := make([]byte, n)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return secret, nil
}

// NewCredential provisions a complete credential for the given algorithm:
// a UUID key id and a 32-byte random secret.
func NewCredential(alg bewit.Algorithm) (bewit.Credential, error) {
	secret, err := NewSecret(DefaultSecretLen)
	if err != nil {
		return bewit.Credential{}, err
	}
	return bewit.Credential{
		KeyID:     NewKeyID(),
		Key:       secret,
		Algorithm: alg,
	}, nil
}
