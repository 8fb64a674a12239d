// Package query реализует подписку на запрос: live-поток изменений через
// push-канал и постраничный обход исторических совпадений по ключу
// (timestamp, id) в обе стороны от момента начала запроса.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/livequery/internal/models"
	"github.com/iudanet/livequery/pkg/api"
)

// ErrSubscriberClosed возвращается после Close
var ErrSubscriberClosed = errors.New("query subscriber is closed")

// ErrNoQuery возвращается при обходе до первого Update
var ErrNoQuery = errors.New("query expression is not set")

// Direction направление обхода истории
type Direction int

const (
	// DirectionRewind к более старым объектам ($lt)
	DirectionRewind Direction = iota
	// DirectionPlay к более новым объектам ($gt)
	DirectionPlay
)

func (d Direction) String() string {
	if d == DirectionPlay {
		return "play"
	}
	return "rewind"
}

func (d Direction) comparator() string {
	if d == DirectionPlay {
		return models.OpGT
	}
	return models.OpLT
}

func (d Direction) order() int {
	if d == DirectionPlay {
		return 1
	}
	return -1
}

// Options настраивает подписчика
type Options struct {
	// QueryID идентификатор запроса; по умолчанию случайный UUID
	QueryID string
	// Live регистрирует запрос на push-канале
	Live bool
}

// Subscriber подписка на одно выражение запроса
type Subscriber struct {
	registrar  Registrar
	clock      Clock
	requester  Requester
	sink       Sink
	logger     *slog.Logger
	expr       models.Query
	cursors    [2]models.Query
	queryID    string
	pollMu     [2]sync.Mutex
	queryStart int64
	generation uint64
	mu         sync.Mutex
	live       bool
	registered bool
	closed     bool
}

// NewSubscriber создает подписчика. registrar может быть nil, если Live не задан.
func NewSubscriber(registrar Registrar, clock Clock, requester Requester, sink Sink, opts Options, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	queryID := opts.QueryID
	if queryID == "" {
		queryID = uuid.NewString()
	}

	return &Subscriber{
		registrar: registrar,
		clock:     clock,
		requester: requester,
		sink:      sink,
		logger:    logger.With("query_id", queryID),
		queryID:   queryID,
		live:      opts.Live && registrar != nil,
	}
}

// QueryID возвращает идентификатор запроса
func (s *Subscriber) QueryID() string {
	return s.queryID
}

// Live сообщает, получает ли подписчик изменения через push-канал
func (s *Subscriber) Live() bool {
	return s.live
}

// Update меняет выражение запроса: очищает результаты, сбрасывает оба курсора,
// запоминает момент начала запроса и регистрирует запрос на push-канале.
func (s *Subscriber) Update(ctx context.Context, expr models.Query) error {
	if expr == nil {
		expr = models.Query{}
	}

	start, err := s.clock.Now()
	if err != nil {
		return fmt.Errorf("failed to read query start time: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSubscriberClosed
	}

	s.generation++
	s.expr = expr
	s.queryStart = start
	s.cursors = [2]models.Query{}
	s.sink.Reset()

	s.logger.Debug("query updated", "query_start", start)

	if !s.live {
		return nil
	}
	if err := s.registrar.RegisterQuery(s.queryID, expr, s.sink.MergeUpdate, s.sink.MergeDelete); err != nil {
		return fmt.Errorf("failed to register live query: %w", err)
	}
	s.registered = true
	return nil
}

// Poll запрашивает следующую страницу истории в направлении dir и
// сужает курсор этого направления. Возвращает true, если страница полная
// и совпадений может быть больше. limit <= 0 сразу возвращает false.
func (s *Subscriber) Poll(ctx context.Context, dir Direction, limit int) (bool, error) {
	if dir != DirectionRewind && dir != DirectionPlay {
		return false, fmt.Errorf("unknown direction %d", int(dir))
	}
	if limit <= 0 {
		return false, nil
	}

	// Страницы одного направления идут строго по очереди
	s.pollMu[dir].Lock()
	defer s.pollMu[dir].Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, ErrSubscriberClosed
	}
	if s.expr == nil {
		s.mu.Unlock()
		return false, ErrNoQuery
	}
	generation := s.generation
	boundary := s.cursors[dir]
	if boundary == nil {
		boundary = models.Compare(models.FieldTimestamp, dir.comparator(), s.queryStart)
	}
	expr := s.expr
	s.mu.Unlock()

	req := api.QueryManyRequest{
		Query: models.And(expr, boundary),
		Limit: limit,
		Sort: []api.SortKey{
			{Field: models.FieldTimestamp, Order: dir.order()},
			{Field: models.FieldID, Order: -1},
		},
	}

	var page []*models.Object
	if err := s.requester.Request(ctx, http.MethodPost, api.PathQueryMany, req, &page); err != nil {
		return false, fmt.Errorf("failed to fetch %s page: %w", dir, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Выражение поменялось, пока страница была в пути
	if s.closed || generation != s.generation {
		s.logger.Debug("stale page discarded", "direction", dir.String())
		return false, nil
	}

	for _, obj := range page {
		if obj != nil {
			s.sink.MergeUpdate(obj)
		}
	}

	if n := len(page); n > 0 && page[n-1] != nil {
		last := page[n-1]
		s.cursors[dir] = models.Or(
			models.Compare(models.FieldTimestamp, dir.comparator(), last.Timestamp),
			models.Query{
				models.FieldTimestamp: last.Timestamp,
				models.FieldID:        map[string]any{models.OpLT: last.ID},
			},
		)
	}

	s.logger.Debug("page fetched", "direction", dir.String(), "count", len(page), "limit", limit)
	return len(page) == limit, nil
}

// Rewind загружает limit более старых совпадений
func (s *Subscriber) Rewind(ctx context.Context, limit int) (bool, error) {
	return s.Poll(ctx, DirectionRewind, limit)
}

// Play загружает limit более новых совпадений. В live режиме новые
// совпадения приходят через push-канал, поэтому Play ничего не запрашивает.
func (s *Subscriber) Play(ctx context.Context, limit int) (bool, error) {
	if s.live {
		return true, nil
	}
	return s.Poll(ctx, DirectionPlay, limit)
}

// Close снимает live-запрос и забывает состояние обхода
func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.cursors = [2]models.Query{}
	s.expr = nil

	if s.registered {
		s.registrar.UnregisterQuery(s.queryID)
		s.registered = false
	}

	s.logger.Debug("query closed")
	return nil
}
