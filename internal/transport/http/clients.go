package http

import (
	"sync"

	"github.com/driftchat/driftchat-server/internal/core"
)

// client is one live WebSocket connection as the transport tracks it.
type client struct {
	id     string
	events chan core.Event
}

func newClient(id string) *client {
	return &client{
		id:     id,
		events: make(chan core.Event, 16),
	}
}

// ClientTable is the set of live connections. It implements core.Conns: a
// client is live exactly while its connection handler keeps it registered,
// which holds for immediate delivery into its event channel.
type ClientTable struct {
	mu      sync.RWMutex
	clients map[string]*client
}

// NewClientTable builds an empty table.
func NewClientTable() *ClientTable {
	return &ClientTable{clients: make(map[string]*client)}
}

func (t *ClientTable) add(c *client) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clients[c.id] = c
}

func (t *ClientTable) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.clients, id)
}

// IsLive reports whether the connection is still registered.
func (t *ClientTable) IsLive(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.clients[id]
	return ok
}

// Send queues an event for the client's write loop. Never blocks; slow
// consumers lose events rather than stalling the matchmaker.
func (t *ClientTable) Send(id string, ev core.Event) bool {
	t.mu.RLock()
	c, ok := t.clients[id]
	t.mu.RUnlock()
	if !ok {
		return false
	}
	select {
	case c.events <- ev:
		return true
	default:
		return false
	}
}
