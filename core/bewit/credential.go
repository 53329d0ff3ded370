package bewit

import "context"

// Algorithm selects the HMAC variant used to sign and verify bewits.
// It also fixes the expected MAC length: 20 bytes for SHA1, 32 for SHA256.
type Algorithm string

const (
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
)

// Credential is a (key id, secret key, algorithm) triple. It is caller-owned
// and immutable from the package's point of view: the package never persists
// or mutates it.
//
// KeyID is an opaque identifier. It travels inside the token byte-for-byte,
// with no case-folding or trimming. Key ids containing the reserved token
// separator `\` are not rejected but produce tokens that fail to decode.
type Credential struct {
	KeyID     string
	Key       []byte
	Algorithm Algorithm
}

// ResolverFunc maps a decoded key id to the credential holding its shared
// secret. Returning (nil, nil) signals an unknown key id, which validation
// reports as a Bad result. A non-nil error signals an infrastructure failure
// (for example a database outage) and aborts validation without a verdict.
//
// Resolvers shared across concurrent validations must be safe for concurrent
// use; the package calls them synchronously, at most once per validation.
type ResolverFunc func(ctx context.Context, keyID string) (*Credential, error)
