package events_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parkslot-booking/backend/internal/events"
)

func TestHub_PublishReachesOnlyThatDraft(t *testing.T) {
	h := events.NewHub(nil)
	draftA, draftB := uuid.New(), uuid.New()
	a := h.Subscribe(draftA)
	b := h.Subscribe(draftB)

	h.Publish(draftA, events.NewMessage(events.TypeDatesChanged, draftA, map[string]int{"count": 1}))

	select {
	case data := <-a.Send():
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "dates.changed", msg["type"])
		assert.Equal(t, draftA.String(), msg["draft_id"])
	default:
		t.Fatal("subscriber of draft A received nothing")
	}
	assert.Empty(t, b.Send(), "subscriber of draft B must not see draft A events")
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := events.NewHub(nil)
	draft := uuid.New()
	c := h.Subscribe(draft)
	require.Equal(t, 1, h.SubscriberCount(draft))

	h.Unsubscribe(c)
	h.Unsubscribe(c) // second call is a no-op

	_, open := <-c.Send()
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount(draft))
}

func TestHub_CloseDisconnectsAll(t *testing.T) {
	h := events.NewHub(nil)
	draft := uuid.New()
	c1 := h.Subscribe(draft)
	c2 := h.Subscribe(draft)

	h.Close(draft)

	_, open1 := <-c1.Send()
	_, open2 := <-c2.Send()
	assert.False(t, open1)
	assert.False(t, open2)
	assert.Equal(t, 0, h.SubscriberCount(draft))
}

func TestHub_SlowSubscriberDropped(t *testing.T) {
	h := events.NewHub(nil)
	draft := uuid.New()
	c := h.Subscribe(draft)

	// Never drain c: after its buffer fills the hub lets it go.
	for i := 0; i < 200; i++ {
		h.Publish(draft, events.NewMessage(events.TypeDateSelected, draft, nil))
	}

	assert.Equal(t, 0, h.SubscriberCount(draft))
	n := 0
	for range c.Send() {
		n++
	}
	assert.Positive(t, n, "buffered messages are still readable before the close")
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	h := events.NewHub(nil)

	assert.NotPanics(t, func() {
		h.Publish(uuid.New(), events.NewMessage(events.TypeDraftExpired, uuid.New(), nil))
	})
}
