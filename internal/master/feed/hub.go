// Package feed pushes channel changes to connected websocket clients, so
// a master display can follow updates without polling.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/domain"
)

const (
	broadcastBuffer = 256
	clientBuffer    = 64
)

// Message is the frame sent for every successful update.
type Message struct {
	ID   string            `json:"id"`
	Info domain.Projection `json:"info"`
}

// Hub tracks connected clients and fans messages out to them.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}

	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:     logger,
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

// Run is the hub main loop. It returns when ctx is cancelled, after
// closing every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("feed client connected", slog.String("remote", c.remote), slog.Int("clients", n))

		case c := <-h.unregister:
			h.drop(c)

		case data := <-h.broadcast:
			h.mu.RLock()
			var slow []*client
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.RUnlock()

			for _, c := range slow {
				h.logger.Warn("feed client too slow, disconnecting", slog.String("remote", c.remote))
				h.drop(c)
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.logger.Debug("feed client disconnected", slog.String("remote", c.remote))
	}
}

// Publish queues info for every connected client. It never blocks; when
// the queue is full the message is dropped.
func (h *Hub) Publish(id string, info domain.Projection) {
	data, err := json.Marshal(Message{ID: id, Info: info})
	if err != nil {
		h.logger.Error("failed to encode feed message", slog.String("channel", id), slog.Any("error", err))
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("feed queue full, dropping update", slog.String("channel", id))
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} { return h.done }

func (h *Hub) add(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
