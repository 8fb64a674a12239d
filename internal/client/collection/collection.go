// Package collection содержит локальный кэш объектов с оптимистичными
// записями: изменение видно сразу, а затем сверяется с тем, что сервер
// присылает через push-канал.
package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/internal/crypto"
	"github.com/iudanet/livequery/internal/models"
	"github.com/iudanet/livequery/pkg/api"
)

// DefaultConfirmTimeout окно подтверждения записи по умолчанию
const DefaultConfirmTimeout = 5 * time.Second

// ErrCollectionClosed возвращается ожидающим записям после Close
var ErrCollectionClosed = errors.New("collection is closed")

// Listener получает снимок объектов после каждого изменения
type Listener func(objects []*models.Object)

// Options настраивает коллекцию
type Options struct {
	// Clock источник timestamp для новых объектов; без него локальное время
	Clock Clock
	// ConfirmTimeout сколько ждать подтверждения записи через push-канал
	ConfirmTimeout time.Duration
}

// pendingWrite запись, ожидающая подтверждения. previous состояние объекта
// до первой из неподтвержденных записей (nil, если объекта не было).
type pendingWrite struct {
	previous   *models.Object
	confirmed  chan struct{}
	superseded chan struct{}
}

// Collection кэш объектов по id
type Collection struct {
	requester      Requester
	identity       Identity
	clock          Clock
	logger         *slog.Logger
	objects        map[string]*models.Object
	pending        map[string]*pendingWrite
	listeners      map[uint64]Listener
	closed         chan struct{}
	confirmTimeout time.Duration
	nextListener   uint64
	version        uint64 // под mu
	delivered      uint64 // под notifyMu
	closeOnce      sync.Once
	mu             sync.Mutex
	notifyMu       sync.Mutex
}

// New создает пустую коллекцию
func New(requester Requester, identity Identity, opts Options, logger *slog.Logger) *Collection {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.ConfirmTimeout
	if timeout <= 0 {
		timeout = DefaultConfirmTimeout
	}

	return &Collection{
		requester:      requester,
		identity:       identity,
		clock:          opts.Clock,
		logger:         logger,
		objects:        make(map[string]*models.Object),
		pending:        make(map[string]*pendingWrite),
		listeners:      make(map[uint64]Listener),
		closed:         make(chan struct{}),
		confirmTimeout: timeout,
	}
}

// Update создает или заменяет объект. Изменение применяется локально до
// ответа сервера; при ошибке сервера откатывается. После успешного ответа
// Update ждет, пока объект придет обратно через push-канал; если этого не
// случилось за окно подтверждения, объект удаляется и возвращается
// *errs.UnconfirmedWriteError. Возвращает id объекта.
func (c *Collection) Update(ctx context.Context, obj *models.Object) (string, error) {
	if obj == nil {
		return "", fmt.Errorf("object cannot be nil")
	}
	ownerID := c.identity.OwnerID()
	if ownerID == "" {
		return "", errs.ErrNotAuthenticated
	}
	select {
	case <-c.closed:
		return "", ErrCollectionClosed
	default:
	}

	o := obj.Clone()
	if o.Fields == nil {
		o.Fields = make(map[string]any)
	}

	var idProof string
	if o.ID == "" {
		nonce, err := crypto.RandomString()
		if err != nil {
			return "", fmt.Errorf("failed to generate id nonce: %w", err)
		}
		id, err := crypto.DeriveObjectID(ownerID, nonce)
		if err != nil {
			return "", fmt.Errorf("failed to derive object id: %w", err)
		}
		o.ID = id
		idProof = nonce
	}
	if o.OwnerID == "" {
		o.OwnerID = ownerID
	}
	if o.Timestamp == 0 {
		o.Timestamp = float64(c.now())
	}

	pw := c.beginWrite(o)

	err := c.requester.Request(ctx, http.MethodPost, api.PathUpdate, api.UpdateRequest{Object: o, IDProof: idProof}, nil)
	if err != nil {
		c.rollback(o.ID, pw)
		return "", fmt.Errorf("failed to update object %s: %w", o.ID, err)
	}

	timer := time.NewTimer(c.confirmTimeout)
	defer timer.Stop()

	select {
	case <-pw.confirmed:
		c.logger.Debug("write confirmed", "object_id", o.ID)
		return o.ID, nil

	case <-pw.superseded:
		// следующая запись того же объекта отвечает за подтверждение
		return o.ID, nil

	case <-timer.C:
		if !c.expire(o.ID, pw) {
			// подтверждение или новая запись успели раньше таймера
			return o.ID, nil
		}
		c.logger.Warn("write not confirmed, deleting", "object_id", o.ID, "timeout", c.confirmTimeout)
		if err := c.requester.Request(ctx, http.MethodPost, api.PathDelete, api.DeleteRequest{ObjectID: o.ID}, nil); err != nil {
			c.logger.Warn("failed to delete unconfirmed object", "object_id", o.ID, "error", err)
		}
		return "", &errs.UnconfirmedWriteError{Object: o}

	case <-ctx.Done():
		c.abandon(o.ID, pw)
		return "", ctx.Err()

	case <-c.closed:
		c.abandon(o.ID, pw)
		return "", ErrCollectionClosed
	}
}

// beginWrite применяет объект и заводит pending запись.
// Новая запись того же id вытесняет старую и наследует ее снимок.
func (c *Collection) beginWrite(o *models.Object) *pendingWrite {
	c.mu.Lock()

	pw := &pendingWrite{
		confirmed:  make(chan struct{}),
		superseded: make(chan struct{}),
	}
	if prev, ok := c.pending[o.ID]; ok {
		pw.previous = prev.previous
		close(prev.superseded)
	} else if cur, ok := c.objects[o.ID]; ok {
		pw.previous = cur
	}

	c.pending[o.ID] = pw
	c.objects[o.ID] = o
	upd := c.changeLocked()
	c.mu.Unlock()

	c.notify(upd)
	return pw
}

// rollback восстанавливает состояние до записи, если она все еще текущая
func (c *Collection) rollback(id string, pw *pendingWrite) {
	c.mu.Lock()
	if c.pending[id] != pw {
		c.mu.Unlock()
		return
	}
	delete(c.pending, id)
	if pw.previous != nil {
		c.objects[id] = pw.previous
	} else {
		delete(c.objects, id)
	}
	upd := c.changeLocked()
	c.mu.Unlock()

	c.logger.Debug("write rolled back", "object_id", id)
	c.notify(upd)
}

// expire удаляет неподтвержденный объект. Возвращает false, если запись
// уже не текущая.
func (c *Collection) expire(id string, pw *pendingWrite) bool {
	c.mu.Lock()
	if c.pending[id] != pw {
		c.mu.Unlock()
		return false
	}
	delete(c.pending, id)
	delete(c.objects, id)
	upd := c.changeLocked()
	c.mu.Unlock()

	c.notify(upd)
	return true
}

// abandon перестает ждать подтверждения, не трогая кэш
func (c *Collection) abandon(id string, pw *pendingWrite) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending[id] == pw {
		delete(c.pending, id)
	}
}

// Delete удаляет объект из кэша и на сервере; при ошибке сервера объект
// возвращается в кэш. Объект, которого нет в кэше, дает *errs.UnknownObjectError.
func (c *Collection) Delete(ctx context.Context, id string) error {
	if c.identity.OwnerID() == "" {
		return errs.ErrNotAuthenticated
	}

	c.mu.Lock()
	prev, ok := c.objects[id]
	if !ok {
		c.mu.Unlock()
		return &errs.UnknownObjectError{ID: id}
	}
	delete(c.objects, id)
	upd := c.changeLocked()
	c.mu.Unlock()
	c.notify(upd)

	err := c.requester.Request(ctx, http.MethodPost, api.PathDelete, api.DeleteRequest{ObjectID: id}, nil)
	if err == nil {
		return nil
	}

	c.mu.Lock()
	// push-канал мог уже прислать более новую версию
	if _, exists := c.objects[id]; !exists {
		c.objects[id] = prev
	}
	upd = c.changeLocked()
	c.mu.Unlock()
	c.notify(upd)

	return fmt.Errorf("failed to delete object %s: %w", id, err)
}

// DeleteMine удаляет все объекты владельца сессии
func (c *Collection) DeleteMine(ctx context.Context) error {
	var errList []error
	for _, obj := range c.Mine() {
		if err := c.Delete(ctx, obj.ID); err != nil {
			var unknown *errs.UnknownObjectError
			if errors.As(err, &unknown) {
				continue
			}
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// MergeUpdate применяет объект, пришедший от сервера, и подтверждает
// ожидающую запись с тем же id. Повторное применение ничего не меняет.
func (c *Collection) MergeUpdate(obj *models.Object) {
	if obj == nil || obj.ID == "" {
		return
	}

	c.mu.Lock()
	c.objects[obj.ID] = obj.Clone()
	if pw, ok := c.pending[obj.ID]; ok {
		delete(c.pending, obj.ID)
		close(pw.confirmed)
	}
	upd := c.changeLocked()
	c.mu.Unlock()

	c.notify(upd)
}

// MergeDelete удаляет объект по сообщению сервера
func (c *Collection) MergeDelete(objectID string) {
	c.mu.Lock()
	if _, ok := c.objects[objectID]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.objects, objectID)
	upd := c.changeLocked()
	c.mu.Unlock()

	c.notify(upd)
}

// Reset очищает кэш при смене запроса. Ожидающие записи продолжают ждать.
func (c *Collection) Reset() {
	c.mu.Lock()
	c.objects = make(map[string]*models.Object)
	upd := c.changeLocked()
	c.mu.Unlock()

	c.notify(upd)
}

// Get возвращает копию объекта
func (c *Collection) Get(id string) (*models.Object, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	obj, ok := c.objects[id]
	if !ok {
		return nil, false
	}
	return obj.Clone(), true
}

// Objects возвращает копии объектов от новых к старым
func (c *Collection) Objects() []*models.Object {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sortedLocked()
}

// Mine возвращает объекты владельца сессии от новых к старым
func (c *Collection) Mine() []*models.Object {
	ownerID := c.identity.OwnerID()
	if ownerID == "" {
		return nil
	}

	var mine []*models.Object
	for _, obj := range c.Objects() {
		if obj.OwnerID == ownerID {
			mine = append(mine, obj)
		}
	}
	return mine
}

// Len возвращает количество объектов
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.objects)
}

// PendingCount возвращает количество неподтвержденных записей
func (c *Collection) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// OnChange подписывает listener на изменения. Возвращает функцию отписки.
// Listener вызывается синхронно и не должен менять коллекцию. Снимки приходят
// по порядку изменений; промежуточный снимок может быть пропущен, последний нет.
func (c *Collection) OnChange(listener Listener) func() {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = listener
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Close прерывает ожидание подтверждений
func (c *Collection) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *Collection) now() int64 {
	if c.clock != nil {
		if ms, err := c.clock.Now(); err == nil {
			return ms
		}
	}
	return time.Now().UnixMilli()
}

// change снимок коллекции с номером версии для рассылки listeners
type change struct {
	objects   []*models.Object
	listeners []Listener
	version   uint64
}

func (c *Collection) changeLocked() change {
	c.version++

	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	return change{objects: c.sortedLocked(), listeners: listeners, version: c.version}
}

func (c *Collection) sortedLocked() []*models.Object {
	snapshot := make([]*models.Object, 0, len(c.objects))
	for _, obj := range c.objects {
		snapshot = append(snapshot, obj.Clone())
	}
	models.SortNewestFirst(snapshot)
	return snapshot
}

// notify рассылает снимки строго по возрастанию версии. Снимок, который
// опоздал за более новым, уже доставленным, пропускается.
func (c *Collection) notify(ch change) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if ch.version <= c.delivered {
		return
	}
	c.delivered = ch.version
	for _, l := range ch.listeners {
		l(ch.objects)
	}
}
