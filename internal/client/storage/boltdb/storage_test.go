package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/livequery/internal/client/storage"
)

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, dbPath, store.Path())
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакет существует
	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketCredentials) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	// Каталог вместо файла
	store, err := New(ctx, t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	// После закрытия поле db должно стать nil
	assert.Nil(t, store.db)

	// Второй вызов Close не должен падать
	assert.NoError(t, store.Close())

	// Операции после закрытия
	_, err = store.Get(context.Background(), storage.CredentialToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Set(context.Background(), storage.CredentialToken, "x"), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Delete(context.Background(), storage.CredentialToken), storage.ErrStorageClosed)
}

func TestNew_Locked(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	first, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, first.Close())
	}()

	// Второе открытие того же файла ждет блокировку и сдается
	second, err := New(context.Background(), dbPath)
	assert.ErrorIs(t, err, ErrLocked)
	assert.Nil(t, second)
}

func TestNew_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store, err := New(ctx, filepath.Join(t.TempDir(), "testdb.db"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, store)
}
