package storage

import "errors"

var (
	// ErrCredentialNotFound под этим именем ничего не сохранено
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrStorageClosed хранилище уже закрыто через Close
	ErrStorageClosed = errors.New("credential store is closed")
)
