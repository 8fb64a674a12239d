package channel

import (
	"time"

	"github.com/gorilla/websocket"
)

// Значения по умолчанию
const (
	DefaultReconnectDelay = 5 * time.Second
	DefaultReadTimeout    = 60 * time.Second
	DefaultControlTimeout = 15 * time.Second
	DefaultHandshake      = 15 * time.Second
)

// Settings настраивает push-канал
type Settings struct {
	// Dialer открывает WebSocket соединение
	Dialer *websocket.Dialer
	// OnError получает ошибки отдельных сообщений (Reject, ProtocolError)
	// и неудачных регистраций. Вызывается из горутин канала и не должен блокировать.
	OnError func(error)
	// OnRegistered вызывается после того, как сервер принял регистрацию запроса
	OnRegistered func(queryID string)
	// URL адрес вида ws(s)://host/query_socket
	URL string
	// ReconnectDelay пауза перед повторным подключением
	ReconnectDelay time.Duration
	// ReadTimeout максимальная пауза между сообщениями сервера
	ReadTimeout time.Duration
	// ControlTimeout таймаут REST вызовов регистрации запросов
	ControlTimeout time.Duration
}

// DefaultSettings возвращает настройки по умолчанию для адреса url
func DefaultSettings(url string) *Settings {
	return &Settings{
		URL:            url,
		ReconnectDelay: DefaultReconnectDelay,
		ReadTimeout:    DefaultReadTimeout,
		ControlTimeout: DefaultControlTimeout,
		Dialer: &websocket.Dialer{
			HandshakeTimeout: DefaultHandshake,
		},
	}
}

func (s *Settings) withDefaults() Settings {
	out := *s
	if out.ReconnectDelay <= 0 {
		out.ReconnectDelay = DefaultReconnectDelay
	}
	if out.ReadTimeout <= 0 {
		out.ReadTimeout = DefaultReadTimeout
	}
	if out.ControlTimeout <= 0 {
		out.ControlTimeout = DefaultControlTimeout
	}
	if out.Dialer == nil {
		out.Dialer = websocket.DefaultDialer
	}
	return out
}
