package storage

import (
	"context"
)

//go:generate moq -out credentialstore_mock.go . CredentialStore

// Имена значений, которые хранит сессия
const (
	CredentialToken        = "token"
	CredentialOwnerID      = "owner_id"
	CredentialClientSecret = "client_secret"
	CredentialClientID     = "client_id"
	CredentialState        = "state"
)

// CredentialStore defines a string key-value store for session credentials.
// Session uses two of them: a persistent one (token, owner id) and a transient
// one that only survives the authorization redirect (client secret, client id, state).
// Implementations do no encryption themselves.
type CredentialStore interface {
	// Get returns the stored value or ErrCredentialNotFound
	Get(ctx context.Context, name string) (string, error)

	// Set stores or replaces the value
	Set(ctx context.Context, name, value string) error

	// Delete removes the value; deleting a missing name is not an error
	Delete(ctx context.Context, name string) error
}
