package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// EventType labels a hub broadcast.
type EventType string

const (
	EventScanResult       EventType = "scan_result"
	EventTrainingComplete EventType = "training_complete"
	EventHeartbeat        EventType = "heartbeat"
)

// Event is one message broadcast to dashboard clients.
type Event struct {
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// EventHub fans scan and training events out to connected websocket
// clients.
type EventHub struct {
	clients    map[*eventClient]bool
	broadcast  chan []byte
	register   chan *eventClient
	unregister chan *eventClient
	mu         sync.Mutex
	upgrader   websocket.Upgrader
	logger     *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

type eventClient struct {
	conn *websocket.Conn
	send chan []byte
}

func NewEventHub(logger *zap.Logger) *EventHub {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventHub{
		clients:    make(map[*eventClient]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *eventClient),
		unregister: make(chan *eventClient),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *EventHub) Run() {
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("event client connected", zap.Int("total", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()

		case <-heartbeat.C:
			h.Publish(EventHeartbeat, map[string]string{"status": "ok"})

		case <-h.ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop closes all client connections and ends Run.
func (h *EventHub) Stop() {
	h.cancel()
}

// Publish queues an event for broadcast. Messages are dropped when the
// queue is full rather than blocking a request handler.
func (h *EventHub) Publish(eventType EventType, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("failed to encode event payload", zap.Error(err))
		return
	}
	message, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      payload,
	})
	if err != nil {
		h.logger.Error("failed to encode event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("event broadcast queue full, dropping message",
			zap.String("type", string(eventType)))
	}
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &eventClient{
		conn: conn,
		send: make(chan []byte, 64),
	}
	s.hub.register <- client

	go client.writePump()
	go client.readPump(s.hub)
}

func (c *eventClient) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *eventClient) readPump(h *EventHub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	for {
		// Clients only listen; drain control/unexpected frames.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
