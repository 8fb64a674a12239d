package channel

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/pkg/api"
)

type opKind int

const (
	opAdd opKind = iota
	opRemove
)

// controlOp регистрация или снятие запроса на сервере в рамках эпохи
// (эпоха меняется при каждой синхронизации соединения)
type controlOp struct {
	queryID string
	epoch   uint64
	kind    opKind
}

// controlQueue FIFO очередь операций с уведомлением
type controlQueue struct {
	notify chan struct{}
	ops    []controlOp
	mu     sync.Mutex
}

func newControlQueue() *controlQueue {
	return &controlQueue{notify: make(chan struct{}, 1)}
}

func (q *controlQueue) push(op controlOp) {
	q.mu.Lock()
	q.ops = append(q.ops, op)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *controlQueue) pop() (controlOp, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.ops) == 0 {
		return controlOp{}, false
	}
	op := q.ops[0]
	q.ops = q.ops[1:]
	return op, true
}

// controlLoop выполняет операции строго по одной, поэтому снятие запроса
// не может обогнать его регистрацию
func (c *Channel) controlLoop(ctx context.Context) {
	defer c.wg.Done()

	// запросы, зарегистрированные на сервере в текущей эпохе
	streaming := make(map[string]bool)
	var streamingEpoch uint64

	for {
		op, ok := c.control.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-c.control.notify:
				continue
			}
		}

		c.mu.Lock()
		if c.state != StateSynced || op.epoch != c.epoch {
			c.mu.Unlock()
			continue
		}
		if streamingEpoch != c.epoch {
			streaming = make(map[string]bool)
			streamingEpoch = c.epoch
		}

		req := api.SocketQueryRequest{SocketID: c.socketID, QueryID: op.queryID}
		var path string

		switch op.kind {
		case opAdd:
			reg, registered := c.registrations[op.queryID]
			if !registered {
				// снят до отправки
				c.mu.Unlock()
				continue
			}
			req.Query = reg.expr
			path = api.PathUpdateSocketQuery
			streaming[op.queryID] = true

		case opRemove:
			if !streaming[op.queryID] {
				// регистрация так и не ушла на сервер
				c.mu.Unlock()
				continue
			}
			delete(streaming, op.queryID)
			path = api.PathDeleteSocketQuery
		}
		c.mu.Unlock()

		reqCtx, cancel := context.WithTimeout(ctx, c.settings.ControlTimeout)
		err := c.session.Request(reqCtx, http.MethodPost, path, req, nil)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("failed to update live query", "path", path, "query_id", op.queryID, "error", err)
			if c.settings.OnError != nil {
				c.settings.OnError(err)
			}
			var reqErr *errs.RequestError
			if errors.As(err, &reqErr) && reqErr.Retryable() {
				c.retryLater(ctx, op, streaming)
			}
			continue
		}

		c.logger.Debug("live query updated", "path", path, "query_id", op.queryID, "socket_id", req.SocketID)
		if op.kind == opAdd && c.settings.OnRegistered != nil {
			c.settings.OnRegistered(op.queryID)
		}
	}
}

// retryLater возвращает операцию в очередь через ReconnectDelay. Операция
// старой эпохи будет отброшена, ее заменит повторная регистрация после Ping.
func (c *Channel) retryLater(ctx context.Context, op controlOp, streaming map[string]bool) {
	if op.kind == opRemove {
		// снятие не дошло до сервера, запрос все еще числится за сокетом
		streaming[op.queryID] = true
	}
	time.AfterFunc(c.settings.ReconnectDelay, func() {
		if ctx.Err() == nil {
			c.control.push(op)
		}
	})
}
