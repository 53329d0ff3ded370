package pg

import "errors"

// Domain-specific errors for consistent handling across the application.
// Check with errors.Is().
var (
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	ErrFailedToParseConfig   = errors.New("failed to parse postgres connection string")
	ErrPostgresNotReady      = errors.New("postgres did not become ready within the given time period")
	ErrHealthcheckFailed     = errors.New("postgres healthcheck failed")
	ErrEmptyKeyID            = errors.New("empty credential key id")
	ErrInvalidTableName      = errors.New("credential table name is not a valid identifier")
)
