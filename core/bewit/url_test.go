package bewit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bewit/core/bewit"
)

func TestSignURL(t *testing.T) {
	t.Parallel()

	t0 := time.Unix(1700000000, 0)
	cred := bewit.Credential{KeyID: "K1", Key: []byte("secret"), Algorithm: bewit.SHA256}
	svc := bewit.New(fixedClock(t0))

	t.Run("appends bewit to an existing query", func(t *testing.T) {
		u := mustParse(t, "https://example.com/doc?b=2&a=1")

		signed, err := svc.SignURL(u, cred, t0.Add(time.Hour))
		require.NoError(t, err)

		// Existing parameters keep their order and encoding.
		assert.True(t, len(signed.RawQuery) > len(u.RawQuery))
		assert.Contains(t, signed.RawQuery, "b=2&a=1&bewit=")
		assert.Equal(t, "https://example.com/doc?b=2&a=1", u.String(), "input url untouched")

		stripped, tok := bewit.StripURL(signed)
		require.NotEmpty(t, tok)
		assert.Equal(t, u.String(), stripped.String())

		res, err := svc.Validate(stripped, cred, tok)
		require.NoError(t, err)
		assert.Equal(t, bewit.Good(t0.Add(time.Hour)), res)
	})

	t.Run("appends bewit to a bare url", func(t *testing.T) {
		u := mustParse(t, "https://example.com/doc")

		signed, err := svc.SignURL(u, cred, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Contains(t, signed.RawQuery, "bewit=")

		stripped, tok := bewit.StripURL(signed)
		require.NotEmpty(t, tok)
		assert.Empty(t, stripped.RawQuery)

		res, err := svc.Validate(stripped, cred, tok)
		require.NoError(t, err)
		assert.True(t, res.OK())
	})

	t.Run("unsupported scheme propagates", func(t *testing.T) {
		_, err := svc.SignURL(mustParse(t, "gopher://example.com/doc"), cred, t0.Add(time.Hour))
		require.ErrorIs(t, err, bewit.ErrUnsupportedScheme)
	})
}

func TestStripURL(t *testing.T) {
	t.Parallel()

	t.Run("no bewit parameter", func(t *testing.T) {
		u := mustParse(t, "https://example.com/doc?a=1")
		stripped, tok := bewit.StripURL(u)
		assert.Empty(t, tok)
		assert.Equal(t, u.String(), stripped.String())
	})

	t.Run("bewit in the middle of the query", func(t *testing.T) {
		u := mustParse(t, "https://example.com/doc?a=1&bewit=abc&b=2")
		stripped, tok := bewit.StripURL(u)
		assert.Equal(t, "abc", tok)
		assert.Equal(t, "a=1&b=2", stripped.RawQuery)
	})

	t.Run("only the first bewit parameter is extracted", func(t *testing.T) {
		u := mustParse(t, "https://example.com/doc?bewit=first&bewit=second")
		stripped, tok := bewit.StripURL(u)
		assert.Equal(t, "first", tok)
		assert.Equal(t, "bewit=second", stripped.RawQuery)
	})

	t.Run("nil url", func(t *testing.T) {
		stripped, tok := bewit.StripURL(nil)
		assert.Nil(t, stripped)
		assert.Empty(t, tok)
	})
}
