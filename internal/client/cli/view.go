package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/livequery/internal/client/channel"
	"github.com/iudanet/livequery/internal/client/clocksync"
	"github.com/iudanet/livequery/internal/client/collection"
	"github.com/iudanet/livequery/internal/client/iocli"
	"github.com/iudanet/livequery/internal/client/query"
	"github.com/iudanet/livequery/internal/models"
)

// view связывает подписчика, коллекцию и (для live) push-канал
type view struct {
	channel    *channel.Channel
	collection *collection.Collection
	subscriber *query.Subscriber
}

func (v *view) Close() error {
	_ = v.subscriber.Close()
	_ = v.collection.Close()
	if v.channel != nil {
		return v.channel.Close()
	}
	return nil
}

// printingSink печатает изменения перед тем, как передать их коллекции
type printingSink struct {
	query.Sink
	io iocli.IO
}

func (s *printingSink) MergeUpdate(obj *models.Object) {
	s.io.Printf("+ %s %s\n", obj.ID, formatFields(obj.Fields))
	s.Sink.MergeUpdate(obj)
}

func (s *printingSink) MergeDelete(objectID string) {
	s.io.Printf("- %s\n", objectID)
	s.Sink.MergeDelete(objectID)
}

func (c *Cli) newCollection(clock collection.Clock) *collection.Collection {
	return collection.New(c.session, c.session, collection.Options{
		Clock:          clock,
		ConfirmTimeout: c.cfg.ConfirmTimeout,
	}, c.logger)
}

// openStatic открывает запрос без push-канала: история читается постранично
func (c *Cli) openStatic(ctx context.Context, expr models.Query) (*view, error) {
	coll := c.newCollection(nil)
	sub := query.NewSubscriber(nil, query.LocalClock(), c.session, coll, query.Options{}, c.logger)

	v := &view{collection: coll, subscriber: sub}
	if err := sub.Update(ctx, expr); err != nil {
		_ = v.Close()
		return nil, fmt.Errorf("failed to start query: %w", err)
	}
	return v, nil
}

// openLive подключает push-канал и ждет, пока сервер примет регистрацию запроса
func (c *Cli) openLive(ctx context.Context, expr models.Query, printChanges bool) (*view, error) {
	channelURL, err := c.cfg.ChannelURL()
	if err != nil {
		return nil, err
	}

	queryID := uuid.NewString()
	registered := make(chan struct{})
	var once sync.Once

	settings := channel.DefaultSettings(channelURL)
	settings.ReconnectDelay = c.cfg.ReconnectDelay
	settings.OnError = func(err error) {
		c.io.Printf("⚠️  %v\n", err)
	}
	settings.OnRegistered = func(id string) {
		if id == queryID {
			once.Do(func() { close(registered) })
		}
	}

	ch := channel.New(settings, c.session, clocksync.New(), c.logger)
	coll := c.newCollection(ch)

	var sink query.Sink = coll
	if printChanges {
		sink = &printingSink{Sink: coll, io: c.io}
	}
	sub := query.NewSubscriber(ch, ch, c.session, sink, query.Options{QueryID: queryID, Live: true}, c.logger)
	v := &view{channel: ch, collection: coll, subscriber: sub}

	if err := ch.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect push channel: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	if err := ch.WaitSynced(waitCtx); err != nil {
		_ = v.Close()
		return nil, fmt.Errorf("push channel did not become ready: %w", err)
	}
	if err := sub.Update(ctx, expr); err != nil {
		_ = v.Close()
		return nil, fmt.Errorf("failed to start query: %w", err)
	}

	select {
	case <-registered:
	case <-waitCtx.Done():
		_ = v.Close()
		return nil, fmt.Errorf("live query was not registered: %w", waitCtx.Err())
	}

	return v, nil
}
