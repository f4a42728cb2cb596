// Package notify fans events out to connected UI clients. One hub actor owns
// the client map; everything reaches it through the inbox.
package notify

import (
	"context"

	"github.com/DoyleJ11/lcu-autopick/internal/types"
)

type Msg interface{ isHubMsg() }

type Join struct {
	ClientID string
	Outbox   chan types.Event // where this client wants to receive events
}

type Leave struct{ ClientID string }

type Publish struct{ Event types.Event }

type Shutdown struct{}

func (Join) isHubMsg()     {}
func (Leave) isHubMsg()    {}
func (Publish) isHubMsg()  {}
func (Shutdown) isHubMsg() {}

type Hub struct {
	inbox   chan Msg
	clients map[string]chan types.Event
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewHub(parent context.Context) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:   make(chan Msg, 64),
		clients: make(map[string]chan types.Event),
		ctx:     ctx,
		cancel:  cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- Msg { return h.inbox }

// Publish is the producer-side convenience used by the engine and stream.
func (h *Hub) Publish(ev types.Event) {
	select {
	case h.inbox <- Publish{Event: ev}:
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
			case Join:
				h.clients[msg.ClientID] = msg.Outbox

			case Leave:
				delete(h.clients, msg.ClientID)

			case Publish:
				h.broadcast(msg.Event)

			case Shutdown:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for id, ch := range h.clients {
		close(ch) // Tell client no more events
		delete(h.clients, id)
	}
	h.cancel()
}

func (h *Hub) broadcast(ev types.Event) {
	for id, ch := range h.clients {
		select {
		case ch <- ev:
			// ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(h.clients, id)
		}
	}
}
