package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, CredentialToken)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	require.NoError(t, store.Set(ctx, CredentialToken, "tok-1"))
	got, err := store.Get(ctx, CredentialToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	// Перезапись
	require.NoError(t, store.Set(ctx, CredentialToken, "tok-2"))
	got, err = store.Get(ctx, CredentialToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got)

	require.NoError(t, store.Delete(ctx, CredentialToken))
	_, err = store.Get(ctx, CredentialToken)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	// Удаление несуществующего значения не ошибка
	assert.NoError(t, store.Delete(ctx, CredentialToken))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, CredentialState, "s")
			_, _ = store.Get(ctx, CredentialState)
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, CredentialState)
	require.NoError(t, err)
	assert.Equal(t, "s", got)
}

var _ CredentialStore = (*MemoryStore)(nil)
