package api

import (
	"encoding/json"
	"fmt"
)

// REST глаголы сервера
const (
	PathToken             = "token"
	PathAuth              = "auth"
	PathUpdate            = "update"
	PathDelete            = "delete"
	PathQueryMany         = "query_many"
	PathUpdateSocketQuery = "update_socket_query"
	PathDeleteSocketQuery = "delete_socket_query"
	PathQuerySocket       = "query_socket"
)

// UpdateRequest представляет запрос на создание или замену объекта
type UpdateRequest struct {
	Object  any    `json:"object"`
	IDProof string `json:"id_proof,omitempty"` // nonce, из которого получен id объекта
}

// DeleteRequest представляет запрос на удаление объекта
type DeleteRequest struct {
	ObjectID string `json:"object_id"`
}

// SortKey задает поле и направление сортировки (1 по возрастанию, -1 по убыванию).
// На проводе сериализуется как пара ["field", order].
type SortKey struct {
	Field string
	Order int
}

// MarshalJSON сериализует ключ сортировки в пару
func (k SortKey) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{k.Field, k.Order})
}

// UnmarshalJSON разбирает пару ["field", order]
func (k *SortKey) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("failed to unmarshal sort key: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("sort key must be a pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &k.Field); err != nil {
		return fmt.Errorf("invalid sort field: %w", err)
	}
	if err := json.Unmarshal(pair[1], &k.Order); err != nil {
		return fmt.Errorf("invalid sort order: %w", err)
	}
	return nil
}

// QueryManyRequest представляет постраничный запрос исторических совпадений
type QueryManyRequest struct {
	Query any       `json:"query"`
	Sort  []SortKey `json:"sort,omitempty"`
	Limit int       `json:"limit"`
}

// SocketQueryRequest регистрирует или снимает live-запрос на push-канале
type SocketQueryRequest struct {
	Query    any    `json:"query,omitempty"`
	SocketID string `json:"socket_id"`
	QueryID  string `json:"query_id"`
}
