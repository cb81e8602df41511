package events

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// sendBuffer is the number of undelivered messages a subscriber may lag
// behind before it is dropped.
const sendBuffer = 64

// Hub tracks subscribers per draft and delivers published messages to them.
// Publish never blocks: a subscriber whose buffer is full is disconnected.
type Hub struct {
	mu     sync.RWMutex
	topics map[uuid.UUID]map[*Client]struct{}
	log    *slog.Logger
}

// NewHub creates an empty hub. A nil logger falls back to slog.Default().
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		topics: make(map[uuid.UUID]map[*Client]struct{}),
		log:    log,
	}
}

// Client is one subscriber to a draft's events.
type Client struct {
	draftID uuid.UUID
	send    chan []byte
}

// Send returns the channel of encoded messages. It is closed when the
// client is unsubscribed, dropped, or its draft expires.
func (c *Client) Send() <-chan []byte {
	return c.send
}

// DraftID returns the draft this client follows.
func (c *Client) DraftID() uuid.UUID {
	return c.draftID
}

// Subscribe registers a new client for draftID.
func (h *Hub) Subscribe(draftID uuid.UUID) *Client {
	c := &Client{draftID: draftID, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[draftID]
	if !ok {
		subs = make(map[*Client]struct{})
		h.topics[draftID] = subs
	}
	subs[c] = struct{}{}
	h.log.Debug("event subscriber added", "draft_id", draftID, "subscribers", len(subs))
	return c
}

// Unsubscribe removes c and closes its channel. Safe to call more than once.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// Publish delivers msg to every subscriber of draftID.
func (h *Hub) Publish(draftID uuid.UUID, msg Message) {
	data, err := msg.JSON()
	if err != nil {
		h.log.Error("encode event", "draft_id", draftID, "type", string(msg.Type), "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.topics[draftID] {
		select {
		case c.send <- data:
		default:
			h.log.Warn("event subscriber too slow, dropping", "draft_id", draftID)
			h.removeLocked(c)
		}
	}
}

// Close disconnects every subscriber of draftID.
func (h *Hub) Close(draftID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.topics[draftID] {
		h.removeLocked(c)
	}
}

// SubscriberCount returns the number of live subscribers for draftID.
func (h *Hub) SubscriberCount(draftID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[draftID])
}

func (h *Hub) removeLocked(c *Client) {
	subs, ok := h.topics[c.draftID]
	if !ok {
		return
	}
	if _, ok := subs[c]; !ok {
		return
	}
	delete(subs, c)
	close(c.send)
	if len(subs) == 0 {
		delete(h.topics, c.draftID)
	}
}
