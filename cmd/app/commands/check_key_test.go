package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/calmcp/credvault/internal/crypto/domain"
)

const strongKeyHex = "8f2a1c9b3e7d40516a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8d9e0f"
const allZeroKeyHex = "0000000000000000000000000000000000000000000000000000000000000000"

func TestRunCheckKey(t *testing.T) {
	t.Run("Success_StrongKeyInProduction", func(t *testing.T) {
		var out bytes.Buffer

		err := RunCheckKey(strongKeyHex, "production", &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "OK")
	})

	t.Run("Error_WeakKeyInProduction", func(t *testing.T) {
		var out bytes.Buffer

		err := RunCheckKey(allZeroKeyHex, "production", &out)
		assert.ErrorIs(t, err, cryptoDomain.ErrWeakKey)
		assert.Contains(t, out.String(), "REJECTED")
	})

	t.Run("Success_WeakKeyInDevelopment", func(t *testing.T) {
		var out bytes.Buffer

		err := RunCheckKey(allZeroKeyHex, "development", &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "OK")
	})

	t.Run("Error_MalformedKeyInDevelopment", func(t *testing.T) {
		var out bytes.Buffer

		err := RunCheckKey("not-hex", "development", &out)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyFormat)
	})

	t.Run("Error_UnrecognizedEnvironmentFailsClosed", func(t *testing.T) {
		var out bytes.Buffer

		err := RunCheckKey(allZeroKeyHex, "staging", &out)
		assert.ErrorIs(t, err, cryptoDomain.ErrWeakKey)
		assert.Contains(t, out.String(), "production")
	})
}
