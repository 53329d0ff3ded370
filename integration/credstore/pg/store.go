package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/bewit/core/bewit"
)

// tableNamePattern accepts a plain or schema-qualified SQL identifier. The
// table name is interpolated into statements, so anything else is rejected.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Store persists bewit credentials in a PostgreSQL table and implements the
// resolver capability of the bewit core.
type Store struct {
	pool  *pgxpool.Pool
	table string
}

// NewStore creates a credential store on top of an established pool. An
// empty table name falls back to "bewit_credentials"; a name that is not a
// plain or schema-qualified identifier is rejected with ErrInvalidTableName,
// since the table name comes from configuration and ends up in SQL text.
func NewStore(pool *pgxpool.Pool, table string) (*Store, error) {
	if table == "" {
		table = "bewit_credentials"
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}
	return &Store{pool: pool, table: table}, nil
}

// EnsureSchema creates the credential table when it does not exist yet.
// Intended for application startup; schema changes beyond that belong to the
// host application's migration tooling.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key_id     text PRIMARY KEY,
			secret     bytea NOT NULL,
			algorithm  text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, s.table))
	if err != nil {
		return fmt.Errorf("ensure credential table %s: %w", s.table, err)
	}
	return nil
}

// Put stores the credential under its key id, replacing any previous row.
func (s *Store) Put(ctx context.Context, cred bewit.Credential) error {
	if cred.KeyID == "" {
		return ErrEmptyKeyID
	}

	_, err := s.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (key_id, secret, algorithm)
		VALUES ($1, $2, $3)
		ON CONFLICT (key_id) DO UPDATE
		SET secret = EXCLUDED.secret, algorithm = EXCLUDED.algorithm`, s.table),
		cred.KeyID, cred.Key, string(cred.Algorithm))
	if err != nil {
		return fmt.Errorf("store credential %q: %w", cred.KeyID, err)
	}
	return nil
}

// Delete removes the credential for the key id. Deleting an unknown key id
// is a no-op.
func (s *Store) Delete(ctx context.Context, keyID string) error {
	_, err := s.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE key_id = $1`, s.table), keyID)
	if err != nil {
		return fmt.Errorf("delete credential %q: %w", keyID, err)
	}
	return nil
}

// Resolve returns the credential for the key id, or nil when unknown.
func (s *Store) Resolve(ctx context.Context, keyID string) (*bewit.Credential, error) {
	var (
		secret    []byte
		algorithm string
	)
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT secret, algorithm FROM %s WHERE key_id = $1`, s.table),
		keyID).Scan(&secret, &algorithm)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres lookup for key id %q: %w", keyID, err)
	}

	return &bewit.Credential{
		KeyID:     keyID,
		Key:       secret,
		Algorithm: bewit.Algorithm(algorithm),
	}, nil
}

// Resolver adapts the store to the resolver capability expected by
// bewit.ValidateWithResolver.
func (s *Store) Resolver() bewit.ResolverFunc {
	return s.Resolve
}
