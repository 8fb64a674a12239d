// Package clocksync вычисляет серверное время по Ping-сообщениям push-канала.
package clocksync

import (
	"sync"
	"time"

	"github.com/iudanet/livequery/internal/client/errs"
)

// Clock хранит последнюю пару (серверное время, локальное время) из Ping
// и экстраполирует по ней текущее серверное время в миллисекундах.
type Clock struct {
	now         func() time.Time // источник локального времени
	serverPing  int64            // серверное время последнего Ping (мс)
	localPing   int64            // локальное время получения последнего Ping (мс)
	initialized bool
	mu          sync.RWMutex
}

// New создает часы, не получившие еще ни одного Ping
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithSource создает часы с заданным источником локального времени.
// Используется в тестах.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Observe запоминает серверное время из Ping
func (c *Clock) Observe(serverMs int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.serverPing = serverMs
	c.localPing = c.now().UnixMilli()
	c.initialized = true
}

// Now возвращает оценку текущего серверного времени:
// localNow - localPingTime + serverPingTime.
// До первого Ping возвращает errs.ErrNotInitialized.
func (c *Clock) Now() (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return 0, errs.ErrNotInitialized
	}

	return c.now().UnixMilli() - c.localPing + c.serverPing, nil
}
