// Package bewit issues and verifies time-limited, stateless access tokens
// ("bewits") that authorize a single read-only request to an exact URI.
//
// A bewit is a compact, self-contained token carrying a key identifier, an
// expiry timestamp and an HMAC over a canonical serialization of the request
// (method, path, query, scheme, host, port). Possession of a valid,
// non-expired bewit proves the holder was granted access to that exact
// resource before the expiry, without any server-side session state beyond
// resolving the shared secret by key id.
//
// # Token Format
//
// The public token is the base64url (no padding) encoding of
//
//	<keyID>\<expiry-seconds>\<base64url-mac>\
//
// where `\` is the reserved field separator. The trailing separator makes the
// token always split into exactly four fields, the fourth being empty.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/bewit/core/bewit"
//
//	cred := bewit.Credential{
//		KeyID:     "key-1",
//		Key:       []byte("shared-secret"),
//		Algorithm: bewit.SHA256,
//	}
//
//	svc := bewit.New()
//
//	u, _ := url.Parse("https://example.com/reports/42?format=pdf")
//	token, err := svc.Generate(u, cred, time.Now().Add(10*time.Minute))
//	if err != nil {
//		// Only fails for URI schemes without a default port.
//	}
//
//	// Later, on the validating side:
//	res, err := svc.Validate(u, cred, token)
//	if err != nil {
//		// Infrastructure or configuration failure, not a verdict.
//	}
//	switch res.Code {
//	case bewit.CodeGood:
//		// Authorized until res.Expiry.
//	case bewit.CodeExpired:
//		// Ask the issuer for a fresh token.
//	case bewit.CodeAuthenticationError:
//		// Tampering or canonicalization mismatch; treat as a security event.
//	case bewit.CodeBad:
//		// Malformed token or unknown/mismatched key id.
//	}
//
// # Multi-Tenant Key Lookup
//
// When the validating side holds many credentials, supply a resolver that
// maps the decoded key id to a credential:
//
//	res, err := svc.ValidateWithResolver(ctx, u, store.Resolver(), token)
//
// The resolver may perform I/O (a database lookup, for example). A nil
// credential means "unknown key id" and yields a Bad result; a resolver
// error is returned as-is and never converted into a verdict.
//
// # URL Signing
//
// The core does not prescribe how the token travels. The most common
// transport is a query parameter, for which SignURL and StripURL are
// provided:
//
//	signed, err := svc.SignURL(u, cred, time.Now().Add(time.Hour))
//	// signed.String() == "https://example.com/reports/42?format=pdf&bewit=..."
//
//	stripped, token := bewit.StripURL(signed)
//	res, err := svc.Validate(stripped, cred, token)
//
// StripURL removes the bewit parameter without re-encoding the rest of the
// query, so the validated URL is byte-identical to the one that was signed.
//
// # Scheme Constraints
//
// Bewits authorize exactly one HTTP method, GET. The canonical string
// hardcodes the verb; generalizing it would change the security semantics of
// the scheme and is intentionally not supported.
//
// Only the http and https URI schemes are supported, because port resolution
// needs a default port when the URI carries none. Any other scheme is a
// configuration error reported as ErrUnsupportedScheme, distinct from the
// four validation verdicts.
//
// # Clock Injection
//
// Expiry comparison reads an injectable clock, defaulting to the system
// clock. Tests pass a fixed clock:
//
//	svc := bewit.New(bewit.WithClock(bewit.ClockFunc(func() time.Time {
//		return time.Unix(1700000000, 0)
//	})))
//
// # Security Notes
//
// MAC comparison is constant time. Anyone holding a non-expired bewit is
// authorized: the scheme does not defend against replay within the validity
// window. The reserved separator is not forbidden inside key ids; a key id
// containing `\` produces a token that misparses on decode. Provision key
// ids without the separator character (see pkg/keygen).
package bewit
