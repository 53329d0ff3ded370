package pg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bewit/integration/credstore/pg"
)

func TestNewStore_TableName(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid identifiers", func(t *testing.T) {
		t.Parallel()

		for _, table := range []string{"", "bewit_credentials", "Creds42", "_private", "auth.credentials"} {
			store, err := pg.NewStore(nil, table)
			require.NoError(t, err, "table %q", table)
			assert.NotNil(t, store)
		}
	})

	t.Run("rejects names that are not identifiers", func(t *testing.T) {
		t.Parallel()

		for _, table := range []string{
			"creds; DROP TABLE users",
			`creds" --`,
			"bad-name",
			"1creds",
			"a.b.c",
			"creds table",
		} {
			store, err := pg.NewStore(nil, table)
			require.ErrorIs(t, err, pg.ErrInvalidTableName, "table %q", table)
			assert.Nil(t, store)
		}
	})
}
