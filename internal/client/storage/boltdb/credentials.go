package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/livequery/internal/client/storage"
)

// Get retrieves a stored credential
func (s *Storage) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := s.view(func(b *bbolt.Bucket) error {
		data := b.Get([]byte(name))
		if data == nil {
			return storage.ErrCredentialNotFound
		}
		// bbolt отдает срез, валидный только внутри транзакции
		value = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores or replaces a credential
func (s *Storage) Set(ctx context.Context, name, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.update(func(b *bbolt.Bucket) error {
		if err := b.Put([]byte(name), []byte(value)); err != nil {
			return fmt.Errorf("failed to save credential %s: %w", name, err)
		}
		return nil
	})
}

// Delete removes a credential; a missing one is not an error
func (s *Storage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.update(func(b *bbolt.Bucket) error {
		if err := b.Delete([]byte(name)); err != nil {
			return fmt.Errorf("failed to delete credential %s: %w", name, err)
		}
		return nil
	})
}
