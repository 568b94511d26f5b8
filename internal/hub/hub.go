// Package hub fans engine events out to subscribers such as websocket clients and the
// store recorder.
package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
)

type Msg interface{ isHubMsg() }

type Subscribe struct {
	ClientID string
	Outbox   chan eventlog.Event // where this subscriber wants to receive events
}

type Unsubscribe struct{ ClientID string }

type Publish struct{ Event eventlog.Event }

type GetStats struct {
	Reply chan Stats
}

type Shutdown struct{}

func (Subscribe) isHubMsg()   {}
func (Unsubscribe) isHubMsg() {}
func (Publish) isHubMsg()     {}
func (GetStats) isHubMsg()    {}
func (Shutdown) isHubMsg()    {}

type Stats struct {
	Subscribers int
	Published   int
	Dropped     int
}

type Hub struct {
	inbox  chan Msg
	subs   map[string]chan eventlog.Event
	stats  Stats
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger, buffer int) *Hub {
	ctx, cancel := context.WithCancel(parent)
	if log == nil {
		log = zap.NewNop()
	}
	if buffer <= 0 {
		buffer = 64
	}

	h := &Hub{
		inbox:  make(chan Msg, buffer),
		subs:   make(map[string]chan eventlog.Event),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}

	go h.loop()
	return h
}

// Inbox exposes the hub's message channel.
func (h *Hub) Inbox() chan<- Msg { return h.inbox }

// Done is closed once the hub has stopped.
func (h *Hub) Done() <-chan struct{} { return h.ctx.Done() }

// Publish hands an event to the hub. It returns without delivering once the hub stopped.
func (h *Hub) Publish(ev eventlog.Event) {
	select {
	case h.inbox <- Publish{Event: ev}:
	case <-h.ctx.Done():
	}
}

// Subscribe registers outbox under id. It reports false if the hub already stopped.
func (h *Hub) Subscribe(id string, outbox chan eventlog.Event) bool {
	if h.ctx.Err() != nil {
		return false
	}
	select {
	case h.inbox <- Subscribe{ClientID: id, Outbox: outbox}:
		return true
	case <-h.ctx.Done():
		return false
	}
}

func (h *Hub) Unsubscribe(id string) {
	select {
	case h.inbox <- Unsubscribe{ClientID: id}:
	case <-h.ctx.Done():
	}
}

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case Subscribe:
				if old, ok := h.subs[msg.ClientID]; ok && old != msg.Outbox {
					close(old)
				}
				h.subs[msg.ClientID] = msg.Outbox

			case Unsubscribe:
				if ch, ok := h.subs[msg.ClientID]; ok {
					close(ch)
					delete(h.subs, msg.ClientID)
				}

			case Publish:
				h.stats.Published++
				h.broadcast(msg.Event)

			case GetStats:
				s := h.stats
				s.Subscribers = len(h.subs)
				msg.Reply <- s

			case Shutdown:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for id, ch := range h.subs {
		close(ch) // no more events for this subscriber
		delete(h.subs, id)
	}
	h.cancel()
}

func (h *Hub) broadcast(ev eventlog.Event) {
	for id, ch := range h.subs {
		select {
		case ch <- ev.Clone():
			// ok
		default:
			// Subscriber is slow/full - drop them.
			close(ch)
			delete(h.subs, id)
			h.stats.Dropped++
			h.log.Warn("dropped slow subscriber", zap.String("client_id", id), zap.Int("seq", ev.Seq))
		}
	}
}
