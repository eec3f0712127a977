package notification

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// ErrNotConnected is returned by Push when the user has no live connection.
var ErrNotConnected = errors.New("user not connected")

type client struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks live notification sockets. A user may hold several connections at once.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*client]struct{}
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[int64]map[*client]struct{}),
		log:     log,
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
}

// Connections reports how many sockets userID currently holds.
func (h *Hub) Connections(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Push queues v for every connection of userID. Slow clients whose buffer is full miss it.
func (h *Hub) Push(userID int64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	set := h.clients[userID]
	if len(set) == 0 {
		return ErrNotConnected
	}
	for c := range set {
		select {
		case c.send <- data:
		default:
			h.log.Debug("dropping live notification for slow client", zap.Int64("user_id", userID))
		}
	}
	return nil
}

// Serve registers conn and blocks until the peer disconnects.
func (h *Hub) Serve(conn *websocket.Conn, userID int64) {
	c := &client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

// readPump only drains control frames; clients never send data on this socket.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("notification socket closed", zap.Int64("user_id", c.userID), zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
