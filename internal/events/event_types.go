package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionEstablished EventType = "session_established"
	EventCredentialRotated  EventType = "credential_rotated"
	EventSessionCleared     EventType = "session_cleared"
	EventRequestFailed      EventType = "request_failed"
)

// Event represents something the session or the dispatcher reports.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with an id and the current time.
func New(t EventType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// SessionEstablishedPayload payload.
type SessionEstablishedPayload struct {
	UserID         int64  `json:"user_id"`
	DisplayName    string `json:"display_name"`
	CredentialName string `json:"credential_name,omitempty"`
	Admin          bool   `json:"admin"`
}

// CredentialRotatedPayload payload.
type CredentialRotatedPayload struct {
	CredentialName string `json:"credential_name"`
}

// SessionClearedPayload payload.
type SessionClearedPayload struct {
	Reason string `json:"reason"`
}

// RequestFailedPayload payload.
type RequestFailedPayload struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Status  int    `json:"status,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
