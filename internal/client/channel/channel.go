// Package channel держит одно постоянное push-соединение с сервером и
// мультиплексирует по нему live-запросы. После обрыва канал переподключается
// и заново регистрирует все запросы.
package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/livequery/internal/client/clocksync"
	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/internal/models"
	"github.com/iudanet/livequery/internal/validation"
	"github.com/iudanet/livequery/pkg/api"
)

//go:generate moq -out session_mock.go . Session

// Session supplies the bearer token and the authenticated REST primitive.
// *auth.Session implements it.
type Session interface {
	Token() string
	Request(ctx context.Context, method, path string, body, result any) error
}

// State состояние соединения
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateAwaitingIdentity
	StateSynced
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateAwaitingIdentity:
		return "awaiting_identity"
	case StateSynced:
		return "synced"
	case StateClosing:
		return "closing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// UpdateHandler получает объекты из Update сообщений
type UpdateHandler func(obj *models.Object)

// DeleteHandler получает id объектов из Delete сообщений
type DeleteHandler func(objectID string)

type registration struct {
	expr     models.Query
	onUpdate UpdateHandler
	onDelete DeleteHandler
}

// Channel представляет push-канал.
// Сообщения одного соединения разбираются одной горутиной, поэтому
// обработчики одного запроса вызываются в порядке прихода сообщений.
type Channel struct {
	session       Session
	clock         *clocksync.Clock
	logger        *slog.Logger
	registrations map[string]*registration
	control       *controlQueue
	synced        chan struct{}
	stopped       chan struct{}
	runCtx        context.Context
	cancel        context.CancelFunc
	socketID      string
	settings      Settings
	wg            sync.WaitGroup
	state         State
	epoch         uint64
	started       bool
	mu            sync.Mutex
}

// New создает канал. Соединение открывается в Connect.
func New(settings *Settings, session Session, clock *clocksync.Clock, logger *slog.Logger) *Channel {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = clocksync.New()
	}

	return &Channel{
		settings:      settings.withDefaults(),
		session:       session,
		clock:         clock,
		logger:        logger,
		registrations: make(map[string]*registration),
		control:       newControlQueue(),
		synced:        make(chan struct{}),
		state:         StateDisconnected,
	}
}

// Connect запускает цикл подключения. Без токена возвращает errs.ErrNotAuthenticated.
// Канал работает до Close или отмены ctx; повторный вызов на работающем канале
// ничего не делает. После отмены ctx канал можно снова открыть через Connect.
func (c *Channel) Connect(ctx context.Context) error {
	if c.session.Token() == "" {
		return errs.ErrNotAuthenticated
	}

	c.mu.Lock()
	if c.started && c.runCtx.Err() != nil {
		// прошлый цикл остановлен отменой ctx, ждем его разбора
		stopped := c.stopped
		c.mu.Unlock()
		<-stopped
		c.mu.Lock()
	}
	defer c.mu.Unlock()

	if c.started {
		return nil
	}
	c.started = true

	runCtx, cancel := context.WithCancel(ctx)
	c.runCtx = runCtx
	c.cancel = cancel
	c.stopped = make(chan struct{})

	c.wg.Add(2)
	go c.run(runCtx)
	go c.controlLoop(runCtx)
	go c.teardown(runCtx, c.stopped)

	return nil
}

// teardown ждет остановки горутин канала и сбрасывает соединение,
// чем бы ни была вызвана остановка: Close или отменой ctx из Connect
func (c *Channel) teardown(ctx context.Context, stopped chan struct{}) {
	<-ctx.Done()
	c.wg.Wait()

	c.mu.Lock()
	c.resetConnectionLocked()
	c.started = false
	c.mu.Unlock()

	close(stopped)
	c.logger.Info("push channel stopped")
}

// Close закрывает соединение без переподключения. Регистрации сохраняются.
func (c *Channel) Close() error {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return nil
	}
	c.state = StateClosing
	cancel, stopped := c.cancel, c.stopped
	c.mu.Unlock()

	cancel()
	<-stopped
	return nil
}

// run подключается и переподключается после каждого обрыва
func (c *Channel) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		c.setState(StateConnecting)
		err := c.serve(ctx)

		if ctx.Err() != nil {
			return
		}

		c.mu.Lock()
		c.resetConnectionLocked()
		c.mu.Unlock()

		c.logger.Warn("push channel closed, reconnecting",
			"error", err,
			"delay", c.settings.ReconnectDelay,
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.settings.ReconnectDelay):
		}
	}
}

// serve обслуживает одно соединение до ошибки
func (c *Channel) serve(ctx context.Context) error {
	dialURL, err := c.dialURL()
	if err != nil {
		return err
	}

	ws, resp, err := c.settings.Dialer.DialContext(ctx, dialURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("failed to dial push channel: %s: %w", resp.Status, err)
		}
		return fmt.Errorf("failed to dial push channel: %w", err)
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Закрытие соединения прерывает блокирующее чтение
	go func() {
		<-connCtx.Done()
		_ = ws.Close()
	}()

	c.setState(StateAwaitingIdentity)
	c.logger.Debug("push channel connected, awaiting identity")

	for {
		_ = ws.SetReadDeadline(time.Now().Add(c.settings.ReadTimeout))
		messageType, message, err := ws.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read push frame: %w", err)
		}
		if messageType != websocket.TextMessage {
			continue
		}

		c.handleFrame(message)
	}
}

func (c *Channel) dialURL() (string, error) {
	u, err := url.Parse(c.settings.URL)
	if err != nil {
		return "", fmt.Errorf("invalid push channel url: %w", err)
	}

	q := u.Query()
	q.Set("token", c.session.Token())
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// handleFrame разбирает одно сообщение. Ошибки сообщения не закрывают соединение.
func (c *Channel) handleFrame(raw []byte) {
	var frame api.Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		c.report(&errs.ProtocolError{Raw: raw, Reason: "invalid json"})
		return
	}

	switch frame.Type {
	case api.FrameTypePing:
		c.handlePing(&frame)

	case api.FrameTypeUpdate:
		if len(frame.Object) == 0 {
			c.report(&errs.ProtocolError{Raw: raw, Reason: "update without object"})
			return
		}
		var obj models.Object
		if err := json.Unmarshal(frame.Object, &obj); err != nil {
			c.report(&errs.ProtocolError{Raw: raw, Reason: err.Error()})
			return
		}
		if reg := c.lookup(frame.QueryID); reg != nil {
			c.logger.Debug("update", "query_id", frame.QueryID, "object_id", obj.ID)
			reg.onUpdate(&obj)
		}

	case api.FrameTypeDelete:
		if reg := c.lookup(frame.QueryID); reg != nil {
			c.logger.Debug("delete", "query_id", frame.QueryID, "object_id", frame.ObjectID)
			reg.onDelete(frame.ObjectID)
		}

	case api.FrameTypeReject:
		c.report(&errs.QueryRejectedError{QueryID: frame.QueryID, Reason: frame.RejectReason()})

	default:
		c.report(&errs.ProtocolError{Raw: raw, Reason: fmt.Sprintf("unrecognized type %q", frame.Type)})
	}
}

// handlePing обновляет часы; первый Ping соединения переводит канал в Synced
// и ставит в очередь повторную регистрацию всех запросов
func (c *Channel) handlePing(frame *api.Frame) {
	c.clock.Observe(int64(frame.Timestamp))

	c.mu.Lock()
	if c.state != StateAwaitingIdentity {
		c.mu.Unlock()
		return
	}

	c.socketID = frame.SocketID
	c.state = StateSynced
	c.epoch++
	// очередь пополняется под тем же мьютексом, что и registrations,
	// чтобы порядок операций совпадал с порядком изменений
	for id := range c.registrations {
		c.control.push(controlOp{kind: opAdd, queryID: id, epoch: c.epoch})
	}
	replayed := len(c.registrations)
	close(c.synced)
	c.mu.Unlock()

	c.logger.Info("push channel synced", "socket_id", frame.SocketID, "queries", replayed)
}

func (c *Channel) lookup(queryID string) *registration {
	c.mu.Lock()
	defer c.mu.Unlock()

	reg, ok := c.registrations[queryID]
	if !ok {
		c.logger.Debug("message for unknown query dropped", "query_id", queryID)
		return nil
	}
	return reg
}

// RegisterQuery сохраняет live-запрос. В состоянии Synced регистрация уходит
// на сервер сразу, иначе после следующей синхронизации.
func (c *Channel) RegisterQuery(queryID string, expr models.Query, onUpdate UpdateHandler, onDelete DeleteHandler) error {
	if err := validation.ValidateQueryID(queryID); err != nil {
		return err
	}
	if onUpdate == nil || onDelete == nil {
		return fmt.Errorf("query %s: handlers cannot be nil", queryID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.registrations[queryID] = &registration{expr: expr, onUpdate: onUpdate, onDelete: onDelete}
	if c.state == StateSynced {
		c.control.push(controlOp{kind: opAdd, queryID: queryID, epoch: c.epoch})
	}
	return nil
}

// UnregisterQuery удаляет live-запрос. Снятие с сервера идет после
// уже поставленной в очередь регистрации того же запроса.
func (c *Channel) UnregisterQuery(queryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.registrations, queryID)
	if c.state == StateSynced {
		c.control.push(controlOp{kind: opRemove, queryID: queryID, epoch: c.epoch})
	}
}

// Registered сообщает, зарегистрирован ли запрос
func (c *Channel) Registered(queryID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.registrations[queryID]
	return ok
}

// Now возвращает синхронизированное серверное время (мс).
// До первого Ping возвращает errs.ErrNotInitialized.
func (c *Channel) Now() (int64, error) {
	return c.clock.Now()
}

// WaitSynced ждет перехода в Synced
func (c *Channel) WaitSynced(ctx context.Context) error {
	c.mu.Lock()
	synced := c.synced
	c.mu.Unlock()

	select {
	case <-synced:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State возвращает текущее состояние
func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SocketID возвращает id текущего соединения или пустую строку
func (c *Channel) SocketID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.socketID
}

func (c *Channel) setState(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Close уже идет
	if c.state == StateClosing {
		return
	}
	c.state = state
}

// resetConnectionLocked забывает socket id; ops старой эпохи становятся устаревшими
func (c *Channel) resetConnectionLocked() {
	c.state = StateDisconnected
	c.socketID = ""

	select {
	case <-c.synced:
		c.synced = make(chan struct{})
	default:
	}
}

func (c *Channel) report(err error) {
	c.logger.Warn("push channel error", "error", err)
	if c.settings.OnError != nil {
		c.settings.OnError(err)
	}
}
