package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/livequery/internal/client/storage"
)

const testPassphrase = "correct horse battery staple"

func TestSealedStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemoryStore()

	sealed, err := NewSealedStore(ctx, inner, testPassphrase)
	require.NoError(t, err)
	assert.True(t, sealed.Sealed())

	require.NoError(t, sealed.Set(ctx, storage.CredentialToken, "plain-token"))

	// В нижнем хранилище лежит шифротекст
	raw, err := inner.Get(ctx, storage.CredentialToken)
	require.NoError(t, err)
	assert.NotEqual(t, "plain-token", raw)
	assert.NotContains(t, raw, "plain-token")

	got, err := sealed.Get(ctx, storage.CredentialToken)
	require.NoError(t, err)
	assert.Equal(t, "plain-token", got)

	require.NoError(t, sealed.Delete(ctx, storage.CredentialToken))
	_, err = sealed.Get(ctx, storage.CredentialToken)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestSealedStore_ReopenWithSamePassphrase(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemoryStore()

	first, err := NewSealedStore(ctx, inner, testPassphrase)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, storage.CredentialOwnerID, "owner-1"))

	salt, err := inner.Get(ctx, saltName)
	require.NoError(t, err)

	second, err := NewSealedStore(ctx, inner, testPassphrase)
	require.NoError(t, err)

	got, err := second.Get(ctx, storage.CredentialOwnerID)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", got)

	// Соль создается один раз
	saltAgain, err := inner.Get(ctx, saltName)
	require.NoError(t, err)
	assert.Equal(t, salt, saltAgain)
}

func TestSealedStore_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemoryStore()

	first, err := NewSealedStore(ctx, inner, testPassphrase)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, storage.CredentialToken, "tok"))

	other, err := NewSealedStore(ctx, inner, "another long passphrase")
	require.NoError(t, err)

	_, err = other.Get(ctx, storage.CredentialToken)
	assert.ErrorContains(t, err, "failed to decrypt token")
}

func TestSealedStore_NoPassphrase(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemoryStore()

	plain, err := NewSealedStore(ctx, inner, "")
	require.NoError(t, err)
	assert.False(t, plain.Sealed())

	require.NoError(t, plain.Set(ctx, storage.CredentialToken, "tok"))
	raw, err := inner.Get(ctx, storage.CredentialToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", raw)

	// Соль не создается
	_, err = inner.Get(ctx, saltName)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestHasSealedValues(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemoryStore()

	sealed, err := HasSealedValues(ctx, inner)
	require.NoError(t, err)
	assert.False(t, sealed)

	_, err = NewSealedStore(ctx, inner, "")
	require.NoError(t, err)
	sealed, err = HasSealedValues(ctx, inner)
	require.NoError(t, err)
	assert.False(t, sealed, "pass-through store leaves no salt")

	_, err = NewSealedStore(ctx, inner, testPassphrase)
	require.NoError(t, err)
	sealed, err = HasSealedValues(ctx, inner)
	require.NoError(t, err)
	assert.True(t, sealed)
}
