package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIDFromSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		errMsg  string
		wantErr bool
	}{
		{
			name:   "successful hash",
			secret: "3f2a9c",
		},
		{
			name:    "empty secret",
			secret:  "",
			wantErr: true,
			errMsg:  "client secret cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientID, err := ClientIDFromSecret(tt.secret)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, clientID)
				return
			}

			require.NoError(t, err)
			// SHA256 хеш всегда 64 hex символа
			assert.Regexp(t, "^[a-f0-9]{64}$", clientID)

			sum := sha256.Sum256([]byte(tt.secret))
			assert.Equal(t, hex.EncodeToString(sum[:]), clientID)
		})
	}
}

func TestVerifyClientID(t *testing.T) {
	clientID, err := ClientIDFromSecret("secret")
	require.NoError(t, err)

	assert.NoError(t, VerifyClientID("secret", clientID))
	assert.Error(t, VerifyClientID("other", clientID))
	assert.Error(t, VerifyClientID("secret", ""))
	assert.Error(t, VerifyClientID("", clientID))
}

func TestDeriveObjectID(t *testing.T) {
	id, err := DeriveObjectID("owner-1", "nonce-1")
	require.NoError(t, err)
	assert.Equal(t, HashHex([]byte("owner-1nonce-1")), id)

	// Детерминированность
	again, err := DeriveObjectID("owner-1", "nonce-1")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	// Другой nonce - другой id
	other, err := DeriveObjectID("owner-1", "nonce-2")
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	_, err = DeriveObjectID("", "nonce")
	assert.Error(t, err)
	_, err = DeriveObjectID("owner", "")
	assert.Error(t, err)
}
