package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := RandomBytes(Argon2KeyLen)
	require.NoError(t, err)
	return key
}

func TestSealOpen(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "token", plaintext: "eyJhbGciOiJIUzI1NiJ9.e30.sig"},
		{name: "empty", plaintext: ""},
		{name: "unicode", plaintext: "секрет"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := Seal(tt.plaintext, key)
			require.NoError(t, err)
			assert.NotEqual(t, tt.plaintext, sealed)

			opened, err := Open(sealed, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, opened)
		})
	}
}

func TestSeal_RandomNonce(t *testing.T) {
	key := testKey(t)

	a, err := Seal("same", key)
	require.NoError(t, err)
	b, err := Seal("same", key)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "одинаковый plaintext должен давать разный ciphertext")
}

func TestOpen_Errors(t *testing.T) {
	key := testKey(t)
	sealed, err := Seal("value", key)
	require.NoError(t, err)

	_, err = Open(sealed, testKey(t))
	assert.ErrorContains(t, err, "authentication failed")

	_, err = Open("%%%", key)
	assert.ErrorContains(t, err, "failed to decode base64")

	_, err = Open("AAAA", key)
	assert.ErrorContains(t, err, "encrypted data too short")

	_, err = Seal("value", []byte("short"))
	assert.ErrorContains(t, err, "encryption key must be 32 bytes, got 5")
}
