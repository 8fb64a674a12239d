package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Зарезервированные поля объекта, остальные поля доменные
const (
	FieldID        = "id"
	FieldOwnerID   = "owner_id"
	FieldTimestamp = "timestamp"
)

// Object представляет объект удаленного хранилища.
// Идентичность объекта определяется ID, уникальность гарантирует сервер.
// На проводе объект плоский: {"id": ..., "owner_id": ..., "timestamp": ..., ...Fields}
type Object struct {
	Fields    map[string]any `json:"-"` // Fields доменные поля объекта
	ID        string         `json:"-"` // ID идентификатор объекта (hex SHA-256)
	OwnerID   string         `json:"-"` // OwnerID идентификатор владельца
	Timestamp float64        `json:"-"` // Timestamp серверное время в миллисекундах, может быть дробным
}

// NewObject создает объект с заданными доменными полями
func NewObject(fields map[string]any) *Object {
	obj := &Object{Fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		obj.Fields[k] = v
	}
	return obj
}

// MarshalJSON сериализует объект в плоский JSON
func (o *Object) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(o.Fields)+3)
	for k, v := range o.Fields {
		flat[k] = v
	}
	if o.ID != "" {
		flat[FieldID] = o.ID
	}
	if o.OwnerID != "" {
		flat[FieldOwnerID] = o.OwnerID
	}
	if o.Timestamp != 0 {
		flat[FieldTimestamp] = o.Timestamp
	}
	return json.Marshal(flat)
}

// UnmarshalJSON разбирает плоский JSON, выделяя зарезервированные поля
func (o *Object) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal object: %w", err)
	}

	*o = Object{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		switch k {
		case FieldID:
			if err := json.Unmarshal(v, &o.ID); err != nil {
				return fmt.Errorf("invalid object id: %w", err)
			}
		case FieldOwnerID:
			// owner_id может быть null у анонимных объектов
			var owner *string
			if err := json.Unmarshal(v, &owner); err != nil {
				return fmt.Errorf("invalid object owner: %w", err)
			}
			if owner != nil {
				o.OwnerID = *owner
			}
		case FieldTimestamp:
			ts, err := decodeTimestamp(v)
			if err != nil {
				return err
			}
			o.Timestamp = ts
		default:
			var field any
			if err := json.Unmarshal(v, &field); err != nil {
				return fmt.Errorf("invalid field %q: %w", k, err)
			}
			o.Fields[k] = field
		}
	}
	return nil
}

// decodeTimestamp принимает целые и дробные миллисекунды без округления:
// граница страницы строится из этого значения
func decodeTimestamp(raw json.RawMessage) (float64, error) {
	var ts *float64
	if err := json.Unmarshal(raw, &ts); err != nil {
		return 0, fmt.Errorf("invalid object timestamp: %w", err)
	}
	if ts == nil {
		return 0, nil
	}
	return *ts, nil
}

// Clone создает глубокую копию объекта
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	fields, _ := cloneValue(o.Fields).(map[string]any)
	return &Object{
		Fields:    fields,
		ID:        o.ID,
		OwnerID:   o.OwnerID,
		Timestamp: o.Timestamp,
	}
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if val == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

// Before сообщает, идет ли объект раньше other в порядке выдачи:
// сначала более новые timestamp, при равенстве больший id.
func (o *Object) Before(other *Object) bool {
	if o.Timestamp != other.Timestamp {
		return o.Timestamp > other.Timestamp
	}
	return o.ID > other.ID
}

// SortNewestFirst сортирует объекты по (timestamp desc, id desc)
func SortNewestFirst(objects []*Object) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Before(objects[j])
	})
}
