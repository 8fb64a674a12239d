package query

import (
	"context"
	"time"

	"github.com/iudanet/livequery/internal/client/channel"
	"github.com/iudanet/livequery/internal/models"
)

//go:generate moq -out registrar_mock.go . Registrar
//go:generate moq -out sink_mock.go . Sink

// Registrar registers live queries on the push channel. *channel.Channel implements it.
type Registrar interface {
	RegisterQuery(queryID string, expr models.Query, onUpdate channel.UpdateHandler, onDelete channel.DeleteHandler) error
	UnregisterQuery(queryID string)
}

// Requester performs authenticated REST calls. *auth.Session implements it.
type Requester interface {
	Request(ctx context.Context, method, path string, body, result any) error
}

// Clock returns server time in milliseconds. *channel.Channel implements it.
type Clock interface {
	Now() (int64, error)
}

// Sink receives query results. *collection.Collection implements it.
type Sink interface {
	MergeUpdate(obj *models.Object)
	MergeDelete(objectID string)
	Reset()
}

// ClockFunc adapts a function to Clock
type ClockFunc func() (int64, error)

// Now calls f
func (f ClockFunc) Now() (int64, error) {
	return f()
}

// LocalClock is a Clock backed by the local wall clock, for subscribers without a push channel
func LocalClock() Clock {
	return ClockFunc(func() (int64, error) {
		return time.Now().UnixMilli(), nil
	})
}
