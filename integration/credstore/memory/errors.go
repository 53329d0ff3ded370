package memory

import "errors"

var (
	// ErrEmptyKeyID is returned when storing a credential without a key id.
	ErrEmptyKeyID = errors.New("empty credential key id")
)
