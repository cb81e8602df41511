package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/events"
	"github.com/pkordes/parkslot-booking/backend/internal/handler"
)

func TestDraftEvents_streamsPublishedMessages(t *testing.T) {
	draftID := uuid.New()
	hub := events.NewHub(nil)
	svc := &mockDraftServicer{
		get: func(context.Context, uuid.UUID) (domain.DraftSnapshot, error) {
			return domain.DraftSnapshot{ID: draftID}, nil
		},
	}
	srv := httptest.NewServer(handler.NewServer(svc, nil, hub, nil, nil).Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/drafts/" + draftID.String() + "/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	// Subscribe happens right after the upgrade; wait for it before publishing.
	require.Eventually(t, func() bool { return hub.SubscriberCount(draftID) == 1 }, time.Second, 5*time.Millisecond)

	hub.Publish(draftID, events.NewMessage(events.TypeDatesChanged, draftID, map[string]any{"count": 1}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "dates.changed", msg["type"])
	assert.Equal(t, draftID.String(), msg["draft_id"])

	// Expiry closes the stream.
	hub.Close(draftID)
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestDraftEvents_404_UnknownDraft(t *testing.T) {
	svc := &mockDraftServicer{
		get: func(context.Context, uuid.UUID) (domain.DraftSnapshot, error) {
			return domain.DraftSnapshot{}, domain.ErrNotFound
		},
	}
	h := handler.NewServer(svc, nil, events.NewHub(nil), nil, nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drafts/"+uuid.NewString()+"/events", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDraftEvents_DraftExpiredBeforeSubscribe(t *testing.T) {
	draftID := uuid.New()
	hub := events.NewHub(nil)
	// The expiry already closed the draft's streams; only a later Get notices.
	hub.Close(draftID)
	svc := &mockDraftServicer{
		get: func(context.Context, uuid.UUID) (domain.DraftSnapshot, error) {
			return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.Get: %w", domain.ErrNotFound)
		},
	}
	h := handler.NewServer(svc, nil, hub, nil, nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drafts/"+draftID.String()+"/events", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, hub.SubscriberCount(draftID), "no subscriber is left behind for an expired draft")
}

func TestDraftEvents_400_BadID(t *testing.T) {
	h := handler.NewServer(&mockDraftServicer{}, nil, events.NewHub(nil), nil, nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drafts/abc/events", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
