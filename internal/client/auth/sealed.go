package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/livequery/internal/client/storage"
	"github.com/iudanet/livequery/internal/crypto"
)

// saltName имя, под которым в хранилище лежит соль ключа
const saltName = "_salt"

// SealedStore implements storage.CredentialStore and provides an encryption layer
// between the session and storage. Values are sealed with AES-256-GCM before saving
// and opened when retrieving. Without a passphrase values pass through as-is.
type SealedStore struct {
	inner storage.CredentialStore
	key   []byte
}

// Compile-time check that SealedStore implements CredentialStore
var _ storage.CredentialStore = (*SealedStore)(nil)

// NewSealedStore derives the store key from passphrase. The salt is created on first use
// and kept in inner next to the sealed values.
func NewSealedStore(ctx context.Context, inner storage.CredentialStore, passphrase string) (*SealedStore, error) {
	s := &SealedStore{inner: inner}
	if passphrase == "" {
		return s, nil
	}

	salt, err := inner.Get(ctx, saltName)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		salt, err = crypto.GenerateSaltBase64()
		if err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
		if err := inner.Set(ctx, saltName, salt); err != nil {
			return nil, fmt.Errorf("failed to save salt: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read salt: %w", err)
	}

	key, err := crypto.DeriveStoreKeyFromBase64Salt(passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive store key: %w", err)
	}
	s.key = key

	return s, nil
}

// HasSealedValues сообщает, был ли inner когда-либо запечатан passphrase
func HasSealedValues(ctx context.Context, inner storage.CredentialStore) (bool, error) {
	_, err := inner.Get(ctx, saltName)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read salt: %w", err)
	}
	return true, nil
}

// Sealed сообщает, шифруются ли значения
func (s *SealedStore) Sealed() bool {
	return s.key != nil
}

// Get загружает значение из хранилища и расшифровывает его
func (s *SealedStore) Get(ctx context.Context, name string) (string, error) {
	stored, err := s.inner.Get(ctx, name)
	if err != nil {
		return "", err
	}
	if s.key == nil {
		return stored, nil
	}

	value, err := crypto.Open(stored, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt %s: %w", name, err)
	}
	return value, nil
}

// Set шифрует значение и передает в хранилище
func (s *SealedStore) Set(ctx context.Context, name, value string) error {
	if s.key == nil {
		return s.inner.Set(ctx, name, value)
	}

	sealed, err := crypto.Seal(value, s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", name, err)
	}
	return s.inner.Set(ctx, name, sealed)
}

// Delete удаляет значение
func (s *SealedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}
