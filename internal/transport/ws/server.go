// Package ws accepts tasks over WebSocket connections.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/xiaot623/gogo/agent/internal/config"
	"github.com/xiaot623/gogo/agent/internal/domain"
	"github.com/xiaot623/gogo/agent/internal/logger"
	"github.com/xiaot623/gogo/agent/internal/metrics"
)

// TaskProcessor executes a task; implemented by service.Service.
type TaskProcessor interface {
	ProcessTask(ctx context.Context, req *domain.TaskRequest) (*domain.TaskResponse, error)
}

// Server handles WebSocket connections.
type Server struct {
	cfg       *config.Config
	processor TaskProcessor
	upgrader  websocket.Upgrader
}

// connection is one upgraded client.
type connection struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// NewServer creates a new WebSocket server.
func NewServer(cfg *config.Config, processor TaskProcessor) *Server {
	return &Server{
		cfg:       cfg,
		processor: processor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection lifecycle.
func (s *Server) HandleWebSocket(c echo.Context) error {
	wsConn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Log.Errorf("Failed to upgrade WebSocket: %v", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	conn := &connection{
		id:     uuid.New().String(),
		conn:   wsConn,
		send:   make(chan []byte, 16),
		ctx:    ctx,
		cancel: cancel,
	}
	wsConn.SetReadLimit(s.cfg.WSMaxMessageSize)

	metrics.IncWSConnections()
	logger.Log.Infof("WebSocket connection opened: %s", conn.id)

	go s.writePump(conn)
	go s.readPump(conn)

	return nil
}

func (conn *connection) close() {
	conn.once.Do(func() {
		conn.cancel()
		conn.conn.Close()
		metrics.DecWSConnections()
		logger.Log.Infof("WebSocket connection closed: %s", conn.id)
	})
}

// readPump reads messages from the WebSocket connection.
func (s *Server) readPump(conn *connection) {
	defer conn.close()

	conn.conn.SetReadDeadline(time.Now().Add(s.cfg.WSReadTimeout))
	conn.conn.SetPongHandler(func(string) error {
		conn.conn.SetReadDeadline(time.Now().Add(s.cfg.WSReadTimeout))
		return nil
	})

	for {
		_, message, err := conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.Warnf("WebSocket error: %v", err)
			}
			return
		}

		s.handleMessage(conn, message)
	}
}

// writePump writes messages to the WebSocket connection.
func (s *Server) writePump(conn *connection) {
	ticker := time.NewTicker(s.cfg.WSPingInterval)
	defer func() {
		ticker.Stop()
		conn.close()
	}()

	for {
		select {
		case <-conn.ctx.Done():
			conn.conn.SetWriteDeadline(time.Now().Add(s.cfg.WSWriteTimeout))
			conn.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-conn.send:
			conn.conn.SetWriteDeadline(time.Now().Add(s.cfg.WSWriteTimeout))
			if err := conn.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Log.Warnf("Failed to write message: %v", err)
				return
			}

		case <-ticker.C:
			conn.conn.SetWriteDeadline(time.Now().Add(s.cfg.WSWriteTimeout))
			if err := conn.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches incoming messages to appropriate handlers.
func (s *Server) handleMessage(conn *connection, data []byte) {
	var base BaseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		s.sendError(conn, "", ErrorCodeInvalidMessage, "invalid JSON message")
		return
	}

	switch base.Type {
	case TypeTask:
		s.handleTask(conn, data)
	default:
		s.sendError(conn, base.RequestID, ErrorCodeInvalidMessage, "unknown message type: "+base.Type)
	}
}

// handleTask decodes a task and runs it in its own goroutine.
func (s *Server) handleTask(conn *connection, data []byte) {
	var msg TaskMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, "", ErrorCodeInvalidMessage, "invalid task message")
		return
	}

	var req domain.TaskRequest
	if len(msg.Task) == 0 {
		s.sendError(conn, msg.RequestID, ErrorCodeInvalidTask, domain.ErrPromptRequired.Error())
		return
	}
	if err := json.Unmarshal(msg.Task, &req); err != nil {
		s.sendError(conn, msg.RequestID, ErrorCodeInvalidTask, err.Error())
		return
	}

	requestID := msg.RequestID
	if requestID == "" {
		requestID = "req_" + uuid.New().String()[:8]
	}

	go func() {
		resp, err := s.processor.ProcessTask(conn.ctx, &req)
		if err != nil {
			s.sendError(conn, requestID, ErrorCodeTaskFailed, err.Error())
			return
		}
		s.sendJSON(conn, TaskResultMessage{
			BaseMessage: BaseMessage{Type: TypeTaskResult, Ts: time.Now().UnixMilli(), RequestID: requestID},
			Response:    resp,
		})
	}()
}

func (s *Server) sendError(conn *connection, requestID, code, message string) {
	s.sendJSON(conn, ErrorMessage{
		BaseMessage: BaseMessage{Type: TypeError, Ts: time.Now().UnixMilli(), RequestID: requestID},
		Code:        code,
		Message:     message,
	})
}

// sendJSON queues v for the write pump; dropped once the connection closes.
func (s *Server) sendJSON(conn *connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Errorf("Failed to marshal message: %v", err)
		return
	}
	select {
	case conn.send <- data:
	case <-conn.ctx.Done():
	}
}
