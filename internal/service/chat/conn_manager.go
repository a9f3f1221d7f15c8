package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"gather_server/internal/dto/request"
	"gather_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// UserConn is one authenticated WebSocket connection. SendBack buffers
// frames on their way to the browser; the read and write loops each own one
// direction.
type UserConn struct {
	Conn     *websocket.Conn
	Uuid     string
	SendBack chan []byte

	mu     sync.Mutex // serializes push against retire
	closed bool
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// push queues one outbound frame, dropping it when the client cannot keep
// up rather than blocking the dispatcher. The dispatcher may still hold the
// pointer after the connection tore down, so push is a no-op once retired.
func (c *UserConn) push(payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.SendBack <- payload:
	default:
		zap.L().Warn("slow chat client, frame dropped", zap.String("user", c.Uuid))
	}
}

// retire closes SendBack exactly once so the write loop drains and exits.
// The mutex keeps a concurrent push from ever sending on the closed channel.
func (c *UserConn) retire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.SendBack)
}

// read consumes inbound frames, stamps the authenticated sender and
// publishes to the broker. Returns when the socket errors or closes.
func (c *UserConn) read(broker MessageBroker) {
	defer func() {
		broker.UnregisterClient(c)
		c.retire()
		_ = c.Conn.Close()
	}()
	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Error("chat read failed", zap.Error(err), zap.String("user", c.Uuid))
			}
			return
		}

		var msg request.ChatMessageRequest
		if err := json.Unmarshal(raw, &msg); err != nil {
			zap.L().Warn("drop malformed chat request", zap.Error(err))
			continue
		}
		if msg.EventId == "" || msg.Content == "" {
			continue
		}

		frame, err := json.Marshal(Frame{
			EventId:  msg.EventId,
			SenderId: c.Uuid,
			Content:  msg.Content,
		})
		if err != nil {
			zap.L().Error("marshal chat frame failed", zap.Error(err))
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := broker.Publish(ctx, frame); err != nil {
			zap.L().Error("publish chat frame failed", zap.Error(err))
			_ = c.Conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"message not delivered, try again"}`))
		}
		cancel()
	}
}

// write pushes queued frames onto the socket until SendBack closes.
func (c *UserConn) write() {
	for payload := range c.SendBack {
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			zap.L().Error("chat write failed", zap.Error(err), zap.String("user", c.Uuid))
			return
		}
	}
}

// ServeWs upgrades an authenticated HTTP request to a chat connection and
// runs the read/write loops.
func ServeWs(c *gin.Context, broker MessageBroker, userId string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("websocket upgrade failed", zap.Error(err))
		return
	}

	// A reconnect replaces the previous socket of the same user.
	if old := broker.GetClient(userId); old != nil {
		broker.UnregisterClient(old)
		_ = old.Conn.Close()
	}

	client := &UserConn{
		Conn:     conn,
		Uuid:     userId,
		SendBack: make(chan []byte, constants.CHANNEL_SIZE),
	}
	broker.RegisterClient(client)
	go client.read(broker)
	go client.write()
	zap.L().Info("chat connection established", zap.String("user", userId))
}
