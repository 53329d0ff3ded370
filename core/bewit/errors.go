package bewit

import "errors"

// Fatal configuration and programmer errors. These are returned as Go errors,
// never folded into a Result: a caller that sees one has a setup bug, not an
// invalid token. Check with errors.Is().
var (
	// ErrUnsupportedScheme is returned when a URI scheme other than http or
	// https needs a default port during canonicalization.
	ErrUnsupportedScheme = errors.New("unsupported uri scheme: no default port defined")

	// ErrUnknownAlgorithm is returned when a credential names an algorithm
	// other than SHA1 or SHA256.
	ErrUnknownAlgorithm = errors.New("unknown mac algorithm")

	// ErrNilResolver is returned by ValidateWithResolver when no resolver is
	// supplied.
	ErrNilResolver = errors.New("nil credential resolver")

	// ErrNilURI is returned when the URI argument is nil.
	ErrNilURI = errors.New("nil uri")
)
