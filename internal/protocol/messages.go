// Package protocol defines the WebSocket message protocol between feed
// clients and the server.
package protocol

import (
	"github.com/divyanshsaxena002/SkillByte/internal/assist"
)

// Message types from client to server
const (
	TypeHello         = "hello"
	TypeViewportEvent = "viewport_event"
	TypeAssistOpen    = "assist_open"
	TypeAssistAnswer  = "assist_answer"
	TypeAssistClose   = "assist_close"
	TypeMarkWatched   = "mark_watched"
)

// Message types from server to client
const (
	TypeHelloAck      = "hello_ack"
	TypeActiveChanged = "active_changed"
	TypeAssistState   = "assist_state"
	TypeProgress      = "progress"
	TypeError         = "error"
)

// BaseMessage contains common fields for all messages.
type BaseMessage struct {
	Type      string `json:"type"`
	Ts        int64  `json:"ts"`
	RequestID string `json:"request_id,omitempty"`
}

// HelloMessage binds the connection to an app session.
type HelloMessage struct {
	BaseMessage
	Token string `json:"token"`
}

// HelloAckMessage confirms the hello handshake.
type HelloAckMessage struct {
	BaseMessage
	ActiveIndex int `json:"active_index"`
}

// ViewportEventMessage reports one feed item's visibility.
type ViewportEventMessage struct {
	BaseMessage
	Index int     `json:"index"`
	Ratio float64 `json:"ratio"`
}

// ActiveChangedMessage announces the new active feed position.
type ActiveChangedMessage struct {
	BaseMessage
	ActiveIndex int    `json:"active_index"`
	VideoID     string `json:"video_id,omitempty"`
}

// AssistOpenMessage opens the assist panel. An empty video_id targets the
// currently active feed video.
type AssistOpenMessage struct {
	BaseMessage
	VideoID string `json:"video_id,omitempty"`
}

// AssistAnswerMessage submits a quiz answer.
type AssistAnswerMessage struct {
	BaseMessage
	Option int `json:"option"`
}

// AssistCloseMessage closes the assist panel.
type AssistCloseMessage struct {
	BaseMessage
}

// AssistStateMessage pushes an assist state snapshot.
type AssistStateMessage struct {
	BaseMessage
	Assist assist.Snapshot `json:"assist"`
}

// MarkWatchedMessage records a completed video.
type MarkWatchedMessage struct {
	BaseMessage
	VideoID string `json:"video_id"`
}

// ProgressMessage pushes the session's progress snapshot.
type ProgressMessage struct {
	BaseMessage
	XP int `json:"xp"`
}

// ErrorMessage is sent when a request fails.
type ErrorMessage struct {
	BaseMessage
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrorCodeInvalidMessage  = "invalid_message"
	ErrorCodeUnauthorized    = "unauthorized"
	ErrorCodeSessionRequired = "session_required"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeInternalError   = "internal_error"
)
