package bewit

import (
	"context"
	"crypto/hmac"
	"net/url"
	"strings"
	"time"
)

// Clock supplies the current time for expiry comparison. It is queried once
// per validation. Implementations shared across concurrent validations must
// be safe for concurrent use.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the system clock. Pass a fixed clock in tests to make
// expiry behavior deterministic.
func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// Service generates and validates bewits. All operations are synchronous and
// free of shared mutable state; a single Service is safe for concurrent use
// as long as its clock is.
type Service struct {
	clock Clock
}

// New creates a Service with the system clock unless overridden.
func New(opts ...Option) *Service {
	s := &Service{clock: systemClock{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate issues a bewit authorizing a GET of the exact URI until expiry.
// Sub-second precision of expiry is discarded. The only failure mode is a
// configuration error: a URI scheme without a default port, a credential
// naming an unknown algorithm, or a nil URI.
func (s *Service) Generate(uri *url.URL, cred Credential, expiry time.Time) (string, error) {
	exp := expiry.Unix()

	canonical, err := canonicalString(uri, exp)
	if err != nil {
		return "", err
	}

	mac, err := computeMAC(cred, canonical)
	if err != nil {
		return "", err
	}

	return encodeToken(token{keyID: cred.KeyID, expiry: exp, mac: mac}), nil
}

// Validate checks a bewit against the URI using an explicitly supplied
// credential. The credential's key id must match the id embedded in the
// token; a mismatch is a Bad verdict, since caller-supplied credentials can
// disagree with the token.
//
// The returned error is reserved for configuration failures (unsupported
// scheme, unknown algorithm); every authorization decision arrives as the
// Result.
func (s *Service) Validate(uri *url.URL, cred Credential, tok string) (Result, error) {
	return s.validate(uri, tok, func(string) (*Credential, error) {
		return &cred, nil
	})
}

// ValidateWithResolver checks a bewit against the URI, resolving the
// credential for the token's decoded key id through resolve. A resolver
// returning (nil, nil) produces a Bad verdict for the unknown key id; a
// resolver error aborts validation without a verdict.
func (s *Service) ValidateWithResolver(ctx context.Context, uri *url.URL, resolve ResolverFunc, tok string) (Result, error) {
	if resolve == nil {
		return Result{}, ErrNilResolver
	}
	return s.validate(uri, tok, func(keyID string) (*Credential, error) {
		return resolve(ctx, keyID)
	})
}

// validate runs the fixed check sequence: decode, credential resolution,
// key id match, expiry, MAC recomputation, constant-time comparison. Each
// step short-circuits to a final verdict.
//
// The MAC is recomputed from the decoded expiry, never the caller's notion
// of it, so rewriting the embedded expiry without the secret breaks
// authentication instead of silently shifting the window.
func (s *Service) validate(uri *url.URL, tok string, lookup func(keyID string) (*Credential, error)) (Result, error) {
	t, ok := decodeToken(tok)
	if !ok {
		return Bad("Invalid bewit"), nil
	}

	cred, err := lookup(t.keyID)
	if err != nil {
		return Result{}, err
	}
	if cred == nil {
		return Bad("No credentials for key id " + t.keyID), nil
	}
	if cred.KeyID != t.keyID {
		return Bad("Key id mismatch"), nil
	}

	expiry := time.Unix(t.expiry, 0)
	if s.clock.Now().After(expiry) {
		return Expired(expiry), nil
	}

	canonical, err := canonicalString(uri, t.expiry)
	if err != nil {
		return Result{}, err
	}
	mac, err := computeMAC(*cred, canonical)
	if err != nil {
		return Result{}, err
	}

	if !hmac.Equal(mac, t.mac) {
		return AuthenticationError("MAC mismatch"), nil
	}
	return Good(expiry), nil
}

// QueryParam is the query parameter name used by SignURL and StripURL.
const QueryParam = "bewit"

// SignURL returns a copy of the URI with a freshly generated bewit appended
// as the bewit query parameter. The token is appended to the raw query
// verbatim, without re-encoding the existing parameters, so the signed
// portion of the URL stays byte-identical to what the MAC covers.
func (s *Service) SignURL(uri *url.URL, cred Credential, expiry time.Time) (*url.URL, error) {
	tok, err := s.Generate(uri, cred, expiry)
	if err != nil {
		return nil, err
	}

	signed := *uri
	if signed.RawQuery == "" {
		signed.RawQuery = QueryParam + "=" + tok
	} else {
		signed.RawQuery += "&" + QueryParam + "=" + tok
	}
	return &signed, nil
}

// StripURL returns a copy of the URI with the bewit query parameter removed,
// along with the token value. The remaining query parameters keep their
// original order and encoding, so the stripped URL matches the one the token
// was generated for. The token is empty when the parameter is absent.
func StripURL(uri *url.URL) (*url.URL, string) {
	if uri == nil {
		return nil, ""
	}

	stripped := *uri
	if stripped.RawQuery == "" {
		return &stripped, ""
	}

	var tok string
	kept := make([]string, 0, 4)
	for _, pair := range strings.Split(uri.RawQuery, "&") {
		if rest, ok := strings.CutPrefix(pair, QueryParam+"="); ok && tok == "" {
			tok = rest
			continue
		}
		kept = append(kept, pair)
	}
	stripped.RawQuery = strings.Join(kept, "&")
	return &stripped, tok
}
