// Package errs содержит таксономию ошибок клиентского рантайма.
// Ошибки без данных объявлены как sentinel-значения, ошибки с данными как типы;
// все они пригодны для errors.Is / errors.As после оборачивания через %w.
package errs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/livequery/internal/models"
)

var (
	// ErrNotAuthenticated возвращается при запросе до готовности сессии или без токена
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrStateMismatch означает, что state из redirect не совпал с сохраненным (anti-CSRF)
	ErrStateMismatch = errors.New("authorization state mismatch")

	// ErrMalformedToken означает, что token endpoint не вернул токен
	ErrMalformedToken = errors.New("could not parse token")

	// ErrNotInitialized возвращается часами канала до первого Ping
	ErrNotInitialized = errors.New("server clock not initialized: no ping received yet")
)

// AuthExchangeError описывает неуспешный обмен кода авторизации на токен
type AuthExchangeError struct {
	Detail string
	Status int
}

func (e *AuthExchangeError) Error() string {
	return fmt.Sprintf("could not exchange code for token: %d: %s", e.Status, e.Detail)
}

// RequestError описывает неуспешный (не 2xx) ответ REST API
type RequestError struct {
	Detail string
	Status int
}

func (e *RequestError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed: %d", e.Status)
	}
	return fmt.Sprintf("request failed: %d: %s", e.Status, e.Detail)
}

// Retryable сообщает, имеет ли смысл повторять запрос
func (e *RequestError) Retryable() bool {
	if e.Status == http.StatusTooManyRequests || e.Status == http.StatusRequestTimeout {
		return true
	}
	return e.Status >= 500
}

// QueryRejectedError описывает отказ сервера обслуживать live-запрос
type QueryRejectedError struct {
	QueryID string
	Reason  string
}

func (e *QueryRejectedError) Error() string {
	return fmt.Sprintf("query %s was rejected: %s", e.QueryID, e.Reason)
}

// ProtocolError описывает нераспознанное push-сообщение
type ProtocolError struct {
	Raw    []byte
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s: %s", e.Reason, string(e.Raw))
}

// UnconfirmedWriteError означает, что запись не была подтверждена push-сообщением
// в течение окна подтверждения и была откачена
type UnconfirmedWriteError struct {
	Object *models.Object
}

func (e *UnconfirmedWriteError) Error() string {
	id := ""
	if e.Object != nil {
		id = e.Object.ID
	}
	return fmt.Sprintf("write of object %s was not confirmed by any watched query and has been deleted", id)
}

// UnknownObjectError означает, что объект отсутствует в локальном кэше
type UnknownObjectError struct {
	ID string
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("object %s is not in this collection", e.ID)
}
