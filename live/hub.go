// Package live pushes standings updates to websocket subscribers. Each
// division is a room; a committed result cascade broadcasts to the
// room so league-table pages refresh without polling.
package live

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

const MessageStandingsUpdated = "STANDINGS_UPDATED"

type Message struct {
	Type       string      `json:"type"`
	DivisionID int         `json:"division_id"`
	Payload    interface{} `json:"payload,omitempty"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	room string
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok {
				if clients[client] {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.room)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

func divisionRoom(divisionID int) string {
	return fmt.Sprintf("division:%d", divisionID)
}

// BroadcastStandingsUpdated notifies every subscriber of the division
// that its tables changed. Slow clients are dropped rather than
// blocking the broadcast.
func (h *Hub) BroadcastStandingsUpdated(divisionID int, payload interface{}) {
	data, err := json.Marshal(Message{
		Type:       MessageStandingsUpdated,
		DivisionID: divisionID,
		Payload:    payload,
	})
	if err != nil {
		h.logger.Error("failed to marshal standings message", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[divisionRoom(divisionID)] {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("dropping slow websocket client", slog.String("room", client.room))
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// Serve registers the connection into the division's room and starts
// the client pumps. It returns immediately.
func (h *Hub) Serve(conn *websocket.Conn, divisionID int) {
	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 16),
		room: divisionRoom(divisionID),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		// Subscribers never send application messages; the read loop
		// only notices disconnects and pong frames.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
