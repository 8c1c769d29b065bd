package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PredictionLeague_Go/internal/metrics"
)

// Event is one message on the stream.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is one open stream. Events is closed when the client is removed or
// the hub stops.
type Client struct {
	ID      string
	Events  chan Event
	types   map[string]struct{}
	dropped atomic.Int64
}

// Dropped reports how many events this client missed because its buffer was full.
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

func (c *Client) accepts(eventType string) bool {
	if len(c.types) == 0 {
		return true
	}
	_, ok := c.types[eventType]
	return ok
}

// Hub owns the set of stream clients. A single loop goroutine mutates the set;
// the mutex only guards reads from ClientCount and Stop.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	events chan Event
	joins  chan *Client
	leaves chan string

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	now      func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		events:  make(chan Event, BroadcastBufferSize),
		joins:   make(chan *Client, ClientChannelBuffer),
		leaves:  make(chan string, ClientChannelBuffer),
		done:    make(chan struct{}),
		now:     time.Now,
	}
}

func (h *Hub) Start() {
	h.wg.Add(1)
	go h.loop()
}

// Stop ends the loop and closes every client stream. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		for id, c := range h.clients {
			close(c.Events)
			delete(h.clients, id)
			metrics.StreamClients.Dec()
		}
	})
}

func (h *Hub) loop() {
	defer h.wg.Done()
	for {
		select {
		case c := <-h.joins:
			h.add(c)
		case id := <-h.leaves:
			h.remove(id)
		case evt := <-h.events:
			h.fanOut(evt)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()
	metrics.StreamClients.Inc()
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
	}
	h.mu.Unlock()
	if !ok {
		return
	}
	close(c.Events)
	metrics.StreamClients.Dec()
}

func (h *Hub) fanOut(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.accepts(evt.Type) {
			continue
		}
		select {
		case c.Events <- evt:
		default:
			c.dropped.Add(1)
			metrics.StreamDropped.WithLabelValues(metrics.DropClientFull).Inc()
		}
	}
}

// Register opens a client for the given event types, or for all types when
// none are given. After Stop the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string) *Client {
	c := &Client{
		ID:     uuid.NewString(),
		Events: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			c.types[t] = struct{}{}
		}
	}

	select {
	case h.joins <- c:
	case <-h.done:
		close(c.Events)
	}
	return c
}

func (h *Hub) Unregister(clientID string) {
	select {
	case h.leaves <- clientID:
	case <-h.done:
	}
}

// Broadcast stamps and queues an event without blocking the publisher.
func (h *Hub) Broadcast(eventType string, payload any) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}
	select {
	case h.events <- evt:
	default:
		metrics.StreamDropped.WithLabelValues(metrics.DropBroadcastFull).Inc()
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatMessage renders evt with text/event-stream framing.
func FormatMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data), nil
}
