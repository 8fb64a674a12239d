// Package boltdb хранит учетные данные клиента в файле BoltDB.
package boltdb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/livequery/internal/client/storage"
)

// OpenTimeout сколько ждать блокировку файла, занятого другим процессом
const OpenTimeout = time.Second

var bucketCredentials = []byte("credentials")

// ErrLocked возвращается, если файл базы открыт другим процессом
var ErrLocked = errors.New("database is locked by another process")

// Storage реализует storage.CredentialStore поверх одного bucket
type Storage struct {
	db   *bbolt.DB
	path string
	mu   sync.RWMutex
}

var _ storage.CredentialStore = (*Storage)(nil)

// New открывает (или создает) базу по пути dbPath
func New(ctx context.Context, dbPath string) (*Storage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: OpenTimeout})
	if err != nil {
		if errors.Is(err, bbolt.ErrTimeout) {
			return nil, fmt.Errorf("failed to open %s: %w", dbPath, ErrLocked)
		}
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCredentials)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create credentials bucket: %w", err)
	}

	return &Storage{db: db, path: dbPath}, nil
}

// Path возвращает путь к файлу базы
func (s *Storage) Path() string {
	return s.path
}

// Close закрывает базу; повторный вызов ничего не делает
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// view и update выполняют транзакцию над bucket учетных данных
func (s *Storage) view(fn func(b *bbolt.Bucket) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(tx.Bucket(bucketCredentials))
	})
}

func (s *Storage) update(fn func(b *bbolt.Bucket) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(tx.Bucket(bucketCredentials))
	})
}
