// Package ws provides the WebSocket surface for the feed: viewport events
// in, active-video and assist pushes out.
package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/divyanshsaxena002/SkillByte/internal/assist"
	"github.com/divyanshsaxena002/SkillByte/internal/config"
	"github.com/divyanshsaxena002/SkillByte/internal/hub"
	"github.com/divyanshsaxena002/SkillByte/internal/protocol"
	"github.com/divyanshsaxena002/SkillByte/internal/service"
)

// Server handles WebSocket connections.
type Server struct {
	cfg      *config.Config
	hub      *hub.Hub
	app      *service.Service
	upgrader websocket.Upgrader
}

// NewServer creates a new WebSocket server.
func NewServer(cfg *config.Config, h *hub.Hub, app *service.Service) *Server {
	return &Server{
		cfg: cfg,
		hub: h,
		app: app,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins for MVP
				return true
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection lifecycle.
func (s *Server) HandleWebSocket(c echo.Context) error {
	ws, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("Failed to upgrade WebSocket: %v", err)
		return err
	}

	conn := s.hub.NewConnection(ws)
	s.hub.Register(conn)

	ws.SetReadLimit(s.cfg.MaxMessageSize)

	go s.writePump(conn)
	go s.readPump(conn)

	return nil
}

// readPump reads messages from the WebSocket connection.
func (s *Server) readPump(conn *hub.Connection) {
	defer func() {
		s.hub.Unregister(conn)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	conn.Conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		return nil
	})

	for {
		_, message, err := conn.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		s.handleMessage(conn, message)
	}
}

// writePump writes messages to the WebSocket connection.
func (s *Server) writePump(conn *hub.Connection) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if !ok {
				// Hub closed the channel
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Failed to write message: %v", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches incoming messages to appropriate handlers.
func (s *Server) handleMessage(conn *hub.Connection, data []byte) {
	var baseMsg protocol.BaseMessage
	if err := json.Unmarshal(data, &baseMsg); err != nil {
		s.sendError(conn, "", protocol.ErrorCodeInvalidMessage, "invalid JSON message")
		return
	}

	if baseMsg.Type != protocol.TypeHello && conn.Token == "" {
		s.sendError(conn, baseMsg.RequestID, protocol.ErrorCodeSessionRequired, "must send hello first")
		return
	}

	switch baseMsg.Type {
	case protocol.TypeHello:
		s.handleHello(conn, data)
	case protocol.TypeViewportEvent:
		s.handleViewportEvent(conn, data)
	case protocol.TypeAssistOpen:
		s.handleAssistOpen(conn, data)
	case protocol.TypeAssistAnswer:
		s.handleAssistAnswer(conn, data)
	case protocol.TypeAssistClose:
		s.handleAssistClose(conn, data)
	case protocol.TypeMarkWatched:
		s.handleMarkWatched(conn, data)
	default:
		s.sendError(conn, baseMsg.RequestID, protocol.ErrorCodeInvalidMessage, "unknown message type: "+baseMsg.Type)
	}
}

// handleHello binds the connection to an app session and wires the assist
// push channel for that session.
func (s *Server) handleHello(conn *hub.Connection, data []byte) {
	var msg protocol.HelloMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, "", protocol.ErrorCodeInvalidMessage, "invalid hello message")
		return
	}

	sess, err := s.app.Session(msg.Token)
	if err != nil {
		s.sendError(conn, msg.RequestID, protocol.ErrorCodeUnauthorized, "unknown session token")
		return
	}

	s.hub.BindSession(conn, msg.Token)

	token := msg.Token
	sess.Assist.SetOnChange(func(snap assist.Snapshot) {
		s.hub.BroadcastJSON(token, protocol.AssistStateMessage{
			BaseMessage: protocol.BaseMessage{
				Type: protocol.TypeAssistState,
				Ts:   time.Now().UnixMilli(),
			},
			Assist: snap,
		})
	})

	ack := protocol.HelloAckMessage{
		BaseMessage: protocol.BaseMessage{
			Type:      protocol.TypeHelloAck,
			Ts:        time.Now().UnixMilli(),
			RequestID: msg.RequestID,
		},
		ActiveIndex: sess.Tracker.ActiveIndex(),
	}
	s.hub.SendJSONToConnection(conn, ack)

	log.Printf("Hello handshake completed for session: %s", token)
}

// handleViewportEvent feeds a visibility event into the session's tracker
// and pushes active_changed when the active video moved.
func (s *Server) handleViewportEvent(conn *hub.Connection, data []byte) {
	var msg protocol.ViewportEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, "", protocol.ErrorCodeInvalidMessage, "invalid viewport_event message")
		return
	}

	changed, err := s.app.ObserveViewport(conn.Token, msg.Index, msg.Ratio)
	if err != nil {
		s.sendError(conn, msg.RequestID, protocol.ErrorCodeUnauthorized, err.Error())
		return
	}
	if !changed {
		return
	}

	out := protocol.ActiveChangedMessage{
		BaseMessage: protocol.BaseMessage{
			Type: protocol.TypeActiveChanged,
			Ts:   time.Now().UnixMilli(),
		},
		ActiveIndex: msg.Index,
	}
	if video, err := s.app.ActiveVideo(context.Background(), conn.Token); err == nil {
		out.VideoID = video.VideoID
	}
	s.hub.BroadcastJSON(conn.Token, out)
}

// handleAssistOpen opens the assist panel. The resulting Opening and Ready
// states arrive via the assist push channel wired at hello.
func (s *Server) handleAssistOpen(conn *hub.Connection, data []byte) {
	var msg protocol.AssistOpenMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, "", protocol.ErrorCodeInvalidMessage, "invalid assist_open message")
		return
	}

	if _, err := s.app.OpenAssist(context.Background(), conn.Token, msg.VideoID); err != nil {
		s.sendError(conn, msg.RequestID, protocol.ErrorCodeNotFound, err.Error())
	}
}

// handleAssistAnswer submits a quiz answer.
func (s *Server) handleAssistAnswer(conn *hub.Connection, data []byte) {
	var msg protocol.AssistAnswerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, "", protocol.ErrorCodeInvalidMessage, "invalid assist_answer message")
		return
	}

	if _, err := s.app.AnswerAssist(conn.Token, msg.Option); err != nil {
		s.sendError(conn, msg.RequestID, protocol.ErrorCodeInvalidMessage, err.Error())
		return
	}

	if progress, err := s.app.Progress(conn.Token); err == nil {
		s.hub.BroadcastJSON(conn.Token, protocol.ProgressMessage{
			BaseMessage: protocol.BaseMessage{
				Type: protocol.TypeProgress,
				Ts:   time.Now().UnixMilli(),
			},
			XP: progress.XP,
		})
	}
}

// handleAssistClose closes the assist panel.
func (s *Server) handleAssistClose(conn *hub.Connection, data []byte) {
	var msg protocol.AssistCloseMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, "", protocol.ErrorCodeInvalidMessage, "invalid assist_close message")
		return
	}

	if err := s.app.CloseAssist(conn.Token); err != nil {
		s.sendError(conn, msg.RequestID, protocol.ErrorCodeUnauthorized, err.Error())
	}
}

// handleMarkWatched records a completed video.
func (s *Server) handleMarkWatched(conn *hub.Connection, data []byte) {
	var msg protocol.MarkWatchedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, "", protocol.ErrorCodeInvalidMessage, "invalid mark_watched message")
		return
	}
	if msg.VideoID == "" {
		s.sendError(conn, msg.RequestID, protocol.ErrorCodeInvalidMessage, "video_id is required")
		return
	}

	if err := s.app.MarkWatched(conn.Token, msg.VideoID); err != nil {
		s.sendError(conn, msg.RequestID, protocol.ErrorCodeUnauthorized, err.Error())
	}
}

// sendError sends an error message to a connection.
func (s *Server) sendError(conn *hub.Connection, requestID, code, message string) {
	errMsg := protocol.ErrorMessage{
		BaseMessage: protocol.BaseMessage{
			Type:      protocol.TypeError,
			Ts:        time.Now().UnixMilli(),
			RequestID: requestID,
		},
		Code:    code,
		Message: message,
	}
	s.hub.SendJSONToConnection(conn, errMsg)
}
