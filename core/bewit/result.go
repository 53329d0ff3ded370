package bewit

import "time"

// Code discriminates the four validation verdicts. Exactly one verdict is
// produced per validation call.
type Code int

const (
	// CodeBad marks caller or input level problems: a malformed token, an
	// unknown key id, or a credential whose key id does not match the token.
	// Often a client bug or a key-rotation artifact, not necessarily an
	// attack.
	CodeBad Code = iota

	// CodeExpired marks a token whose expiry is strictly in the past.
	// Expected and frequent; the caller should request a fresh token.
	CodeExpired

	// CodeAuthenticationError marks a MAC mismatch: either tampering or a
	// canonicalization mismatch (different scheme, host, port, path or query
	// than was signed). Callers should treat it as a potential security
	// event.
	CodeAuthenticationError

	// CodeGood marks a valid, non-expired token.
	CodeGood
)

// String implements fmt.Stringer for log output.
func (c Code) String() string {
	switch c {
	case CodeBad:
		return "bad"
	case CodeExpired:
		return "expired"
	case CodeAuthenticationError:
		return "authentication_error"
	case CodeGood:
		return "good"
	default:
		return "unknown"
	}
}

// Result is the verdict of a single validation call: a closed tagged union
// over the four codes. Reason is set for CodeBad and CodeAuthenticationError;
// Expiry is set for CodeExpired and CodeGood (the decoded token expiry,
// truncated to whole seconds). The struct is comparable, so verdicts can be
// asserted with plain equality in tests.
type Result struct {
	Code   Code
	Expiry time.Time
	Reason string
}

// OK reports whether the verdict authorizes the request.
func (r Result) OK() bool {
	return r.Code == CodeGood
}

// Bad builds a CodeBad verdict with the given reason.
func Bad(reason string) Result {
	return Result{Code: CodeBad, Reason: reason}
}

// Expired builds a CodeExpired verdict carrying the decoded token expiry.
func Expired(expiry time.Time) Result {
	return Result{Code: CodeExpired, Expiry: expiry}
}

// AuthenticationError builds a CodeAuthenticationError verdict with the
// given reason.
func AuthenticationError(reason string) Result {
	return Result{Code: CodeAuthenticationError, Reason: reason}
}

// Good builds a CodeGood verdict carrying the decoded token expiry.
func Good(expiry time.Time) Result {
	return Result{Code: CodeGood, Expiry: expiry}
}
