package redis

import "errors"

// Domain-specific errors for consistent handling across the application.
// Check with errors.Is().
var (
	ErrEmptyConnectionURL  = errors.New("empty redis connection URL")
	ErrFailedToParseURL    = errors.New("failed to parse redis connection string")
	ErrRedisNotReady       = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed   = errors.New("redis healthcheck failed")
	ErrEmptyKeyID          = errors.New("empty credential key id")
	ErrMalformedCredential = errors.New("malformed stored credential")
)
