package hub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
)

// helper: receive one event with a timeout so tests never hang
func recvEvent(t *testing.T, ch <-chan eventlog.Event, within time.Duration) eventlog.Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatalf("subscriber outbox closed unexpectedly")
		}
		return ev
	case <-time.After(within):
		t.Fatalf("timed out waiting for event")
		return eventlog.Event{} // unreachable
	}
}

func recvClosed(t *testing.T, ch <-chan eventlog.Event, within time.Duration) {
	t.Helper()
	deadline := time.After(within)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("outbox not closed within %v", within)
		}
	}
}

func stats(t *testing.T, h *Hub) Stats {
	t.Helper()
	reply := make(chan Stats, 1)
	h.Inbox() <- GetStats{Reply: reply}
	select {
	case s := <-reply:
		return s
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for stats")
		return Stats{}
	}
}

func TestHub_PublishReachesEverySubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, nil, 8)

	a := make(chan eventlog.Event, 2)
	b := make(chan eventlog.Event, 2)
	require.True(t, h.Subscribe("a", a))
	require.True(t, h.Subscribe("b", b))

	h.Publish(eventlog.Event{Seq: 1, Kind: eventlog.KindLobbyCreated})

	assert.Equal(t, 1, recvEvent(t, a, 100*time.Millisecond).Seq)
	assert.Equal(t, 1, recvEvent(t, b, 100*time.Millisecond).Seq)

	s := stats(t, h)
	assert.Equal(t, 2, s.Subscribers)
	assert.Equal(t, 1, s.Published)
}

func TestHub_SubscribersGetIndependentFields(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, nil, 8)

	a := make(chan eventlog.Event, 1)
	b := make(chan eventlog.Event, 1)
	require.True(t, h.Subscribe("a", a))
	require.True(t, h.Subscribe("b", b))

	h.Publish(eventlog.Event{Seq: 1, Kind: eventlog.KindLobbyCreated, Fields: []eventlog.Field{eventlog.F("lobby_id", "lobby-1")}})

	fromA := recvEvent(t, a, 100*time.Millisecond)
	fromB := recvEvent(t, b, 100*time.Millisecond)
	fromA.Fields[0].Value = "changed"

	assert.Equal(t, "lobby-1", fromB.Fields[0].Value)
}

func TestHub_DropSlowSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, nil, 8)

	slow := make(chan eventlog.Event, 1)
	h.Subscribe("slow", slow)

	h.Publish(eventlog.Event{Seq: 1})
	h.Publish(eventlog.Event{Seq: 2})

	s := stats(t, h)
	assert.Zero(t, s.Subscribers)
	assert.Equal(t, 1, s.Dropped)
	recvClosed(t, slow, 100*time.Millisecond)
}

func TestHub_UnsubscribeClosesOutbox(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, nil, 8)

	out := make(chan eventlog.Event, 1)
	h.Subscribe("c1", out)
	h.Unsubscribe("c1")

	recvClosed(t, out, 100*time.Millisecond)
	assert.Zero(t, stats(t, h).Subscribers)
}

func TestHub_Shutdown(t *testing.T) {
	h := NewHub(context.Background(), nil, 8)

	out := make(chan eventlog.Event, 1)
	h.Subscribe("c1", out)
	h.Inbox() <- Shutdown{}

	recvClosed(t, out, 100*time.Millisecond)

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatalf("hub did not stop")
	}

	// Publishing after shutdown must not block.
	h.Publish(eventlog.Event{Seq: 1})
	assert.False(t, h.Subscribe("late", make(chan eventlog.Event, 1)))
}
