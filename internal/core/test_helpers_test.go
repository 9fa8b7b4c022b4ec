package core

import (
	"sync"
	"testing"
	"time"
)

// fakeConns stands in for the transport layer: liveness flags plus a record
// of every event sent to every client.
type fakeConns struct {
	mu     sync.Mutex
	live   map[string]bool
	events map[string][]Event
}

func newFakeConns(ids ...string) *fakeConns {
	f := &fakeConns{
		live:   make(map[string]bool),
		events: make(map[string][]Event),
	}
	for _, id := range ids {
		f.live[id] = true
	}
	return f
}

func (f *fakeConns) IsLive(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live[id]
}

func (f *fakeConns) Send(id string, ev Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.live[id] {
		return false
	}
	f.events[id] = append(f.events[id], ev)
	return true
}

// drop marks a connection dead without telling the matchmaker, the way a
// vanished socket looks before its disconnect event is processed.
func (f *fakeConns) drop(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.live[id] = false
}

func (f *fakeConns) sent(id string) []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.events[id]))
	copy(out, f.events[id])
	return out
}

func (f *fakeConns) count(id string, kind EventKind) int {
	n := 0
	for _, ev := range f.sent(id) {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Locked state accessors so tests never race with rematch timers.

func (m *Matchmaker) partnerOf(id string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pairs.Partner(id)
}

func (m *Matchmaker) isWaiting(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.waiting.Contains(id)
}

func (m *Matchmaker) hasProfile(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.profiles[id]
	return ok
}

func (m *Matchmaker) profileOf(id string) *Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles[id]
}

// mustEvent waits for the n-th event of the given kind to reach id. Needed
// for the deferred skip re-entry; synchronous operations record immediately.
func mustEvent(t *testing.T, conns *fakeConns, id string, kind EventKind, n int) Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		seen := 0
		for _, ev := range conns.sent(id) {
			if ev.Kind == kind {
				seen++
				if seen == n {
					return ev
				}
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client %s: event kind %v (occurrence %d) not received", id, kind, n)
	return Event{}
}

func lastEvent(t *testing.T, conns *fakeConns, id string) Event {
	t.Helper()

	events := conns.sent(id)
	if len(events) == 0 {
		t.Fatalf("client %s: no events recorded", id)
	}
	return events[len(events)-1]
}
