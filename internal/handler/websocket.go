package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pkordes/parkslot-booking/backend/internal/events"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 4096
)

// Any origin may subscribe. The stream is read-only.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// DraftEvents handles GET /drafts/{draftID}/events by upgrading to a
// websocket that streams the draft's events as JSON text frames. The stream
// ends when the client disconnects or the draft expires.
func (s *Server) DraftEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}
	// Expiry closes a draft's streams once, so the draft is checked after
	// subscribing: a client added after that close would never be released.
	client := s.events.Subscribe(id)
	if _, err := s.drafts.Get(r.Context(), id); err != nil {
		s.events.Unsubscribe(client)
		s.writeError(w, r, err, "draft not found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.events.Unsubscribe(client)
		s.log.WarnContext(r.Context(), "websocket upgrade failed", "draft_id", id, "error", err)
		return
	}
	s.log.DebugContext(r.Context(), "event stream opened", "draft_id", id)

	go s.writePump(conn, client)
	go s.readPump(conn, client)
}

// writePump forwards hub messages to the connection and keeps it alive with pings.
func (s *Server) writePump(conn *websocket.Conn, client *events.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel: unsubscribed, too slow, or the draft expired.
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames and unsubscribes once the peer goes away.
func (s *Server) readPump(conn *websocket.Conn, client *events.Client) {
	defer func() {
		s.events.Unsubscribe(client)
		_ = conn.Close()
	}()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				s.log.Warn("event stream read error", "draft_id", client.DraftID(), "error", err)
			}
			return
		}
	}
}
