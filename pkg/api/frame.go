package api

import "encoding/json"

// Типы push-сообщений канала
const (
	FrameTypePing   = "Ping"
	FrameTypeUpdate = "Update"
	FrameTypeDelete = "Delete"
	FrameTypeReject = "Reject"
)

// Frame представляет сообщение сервер→клиент на push-канале
type Frame struct {
	Object    json.RawMessage `json:"object,omitempty"`    // Update: объект
	Type      string          `json:"type"`                // тип сообщения
	SocketID  string          `json:"socket_id,omitempty"` // Ping: идентификатор соединения
	QueryID   string          `json:"query_id,omitempty"`  // Update/Delete/Reject
	ObjectID  string          `json:"object_id,omitempty"` // Delete: id удаленного объекта
	Reason    string          `json:"reason,omitempty"`    // Reject: причина
	Content   string          `json:"content,omitempty"`   // Reject: устаревшее имя reason
	Timestamp float64         `json:"timestamp,omitempty"` // Ping: серверное время (мс)
}

// RejectReason возвращает причину отказа с учетом устаревшего поля
func (f *Frame) RejectReason() string {
	if f.Reason != "" {
		return f.Reason
	}
	return f.Content
}
