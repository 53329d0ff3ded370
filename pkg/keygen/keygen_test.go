package keygen_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bewit/core/bewit"
	"github.com/dmitrymomot/bewit/pkg/keygen"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestNewKeyID(t *testing.T) {
	t.Parallel()

	id := keygen.NewKeyID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.NotContains(t, id, `\`)
	assert.NotEqual(t, id, keygen.NewKeyID())
}

func TestNewSecret(t *testing.T) {
	t.Parallel()

	t.Run("returns the requested length", func(t *testing.T) {
		secret, err := keygen.NewSecret(32)
		require.NoError(t, err)
		assert.Len(t, secret, 32)
	})

	t.Run("secrets are unique", func(t *testing.T) {
		a, err := keygen.NewSecret(32)
		require.NoError(t, err)
		b, err := keygen.NewSecret(32)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("rejects non-positive lengths", func(t *testing.T) {
		_, err := keygen.NewSecret(0)
		require.ErrorIs(t, err, keygen.ErrInvalidSecretLen)

		_, err = keygen.NewSecret(-1)
		require.ErrorIs(t, err, keygen.ErrInvalidSecretLen)
	})
}

func TestNewCredential(t *testing.T) {
	t.Parallel()

	cred, err := keygen.NewCredential(bewit.SHA256)
	require.NoError(t, err)

	assert.Equal(t, bewit.SHA256, cred.Algorithm)
	assert.Len(t, cred.Key, keygen.DefaultSecretLen)
	_, err = uuid.Parse(cred.KeyID)
	require.NoError(t, err)

	// Freshly provisioned credentials must be immediately usable.
	t0 := time.Unix(1700000000, 0)
	svc := bewit.New(bewit.WithClock(bewit.ClockFunc(func() time.Time { return t0 })))
	u := mustParse(t, "https://example.com/resource")

	tok, err := svc.Generate(u, cred, t0.Add(time.Hour))
	require.NoError(t, err)

	res, err := svc.Validate(u, cred, tok)
	require.NoError(t, err)
	assert.True(t, res.OK())
}
