package collection

import (
	"context"
)

//go:generate moq -out requester_mock.go . Requester
//go:generate moq -out identity_mock.go . Identity

// Requester performs authenticated REST calls. *auth.Session implements it.
type Requester interface {
	Request(ctx context.Context, method, path string, body, result any) error
}

// Identity reports the owner of the current session. *auth.Session implements it.
type Identity interface {
	OwnerID() string
}

// Clock returns server time in milliseconds. *channel.Channel implements it.
type Clock interface {
	Now() (int64, error)
}
