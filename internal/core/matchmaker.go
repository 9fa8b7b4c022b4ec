package core

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// timestampLayout matches JavaScript's Date.toISOString output.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DefaultRematchDelay is the settling delay before skip re-enters both
// parties into matching. It debounces near-simultaneous skips; it is not a
// correctness requirement.
const DefaultRematchDelay = 500 * time.Millisecond

// Matchmaker owns the waiting queue, the pairing table and the profile
// registry, and serializes every mutation behind one lock. At any quiescent
// point a client id is in the queue or in the table, never both.
type Matchmaker struct {
	mu       sync.Mutex
	conns    Conns
	pairLog  PairLog
	delay    time.Duration
	log      zerolog.Logger
	profiles map[string]*Profile
	waiting  waitlist
	pairs    pairTable
	rematch  map[string]*time.Timer
	closed   bool
}

// NewMatchmaker builds a matchmaker delivering through conns. pairLog may be
// nil. A non-positive delay falls back to DefaultRematchDelay.
func NewMatchmaker(conns Conns, pairLog PairLog, delay time.Duration, logger *zerolog.Logger) *Matchmaker {
	if pairLog == nil {
		pairLog = nopPairLog{}
	}
	if delay <= 0 {
		delay = DefaultRematchDelay
	}
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Matchmaker{
		conns:    conns,
		pairLog:  pairLog,
		delay:    delay,
		log:      l,
		profiles: make(map[string]*Profile),
		pairs:    newPairTable(),
		rematch:  make(map[string]*time.Timer),
	}
}

// RequestPartner registers or overwrites the client's profile, tears down any
// existing pairing, then matches the client with the first live waiting
// client or queues it. Interests and language are recorded but do not
// influence candidate selection.
func (m *Matchmaker) RequestPartner(id string, interests []string, language string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if language == "" {
		language = DefaultLanguage
	}
	m.profiles[id] = &Profile{ID: id, Interests: interests, Language: language}
	m.findPartner(id)
}

// RelayMessage forwards text to the sender's partner with a generation
// timestamp. No-op if the sender is unpaired or the partner is gone. The
// sender gets nothing back; local echo is the client's job.
func (m *Matchmaker) RelayMessage(id, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	partner, ok := m.pairs.Partner(id)
	if !ok || !m.conns.IsLive(partner) {
		return
	}
	m.conns.Send(partner, Event{
		Kind:      EventMessage,
		Text:      text,
		Timestamp: time.Now().UTC().Format(timestampLayout),
	})
}

// RelayTyping forwards the typing indicator to the sender's partner.
// Fire-and-forget; nothing is retained.
func (m *Matchmaker) RelayTyping(id string, typing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	partner, ok := m.pairs.Partner(id)
	if !ok {
		return
	}
	m.conns.Send(partner, Event{Kind: EventPartnerTyping, Typing: typing})
}

// Skip ends the client's current pairing. The partner is notified; the
// initiator is not. Both parties re-enter matching independently after the
// settling delay. No-op if unpaired.
func (m *Matchmaker) Skip(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	partner, ok := m.pairs.Remove(id)
	if !ok {
		return
	}
	m.pairLog.PairEnded(id, partner, EndReasonSkip)
	m.conns.Send(partner, Event{Kind: EventPartnerSkipped})
	m.log.Debug().Str("client", id).Str("partner", partner).Msg("pair skipped")

	m.scheduleRematch(id)
	m.scheduleRematch(partner)
}

// Disconnect removes every trace of the client: pending rematch timer,
// pairing (partner is notified, not re-queued), queue slot and profile.
// Idempotent; a second call finds nothing to do.
func (m *Matchmaker) Disconnect(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.rematch[id]; ok {
		t.Stop()
		delete(m.rematch, id)
	}
	if partner, ok := m.pairs.Remove(id); ok {
		m.pairLog.PairEnded(id, partner, EndReasonDisconnect)
		m.conns.Send(partner, Event{Kind: EventPartnerDisconnected})
	}
	m.waiting.Remove(id)
	if _, ok := m.profiles[id]; ok {
		delete(m.profiles, id)
		m.log.Debug().Str("client", id).Msg("client removed")
	}
}

// Close stops all pending rematch timers and refuses further matching.
// Relay lookups keep working so in-flight connections can drain.
func (m *Matchmaker) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	for id, t := range m.rematch {
		t.Stop()
		delete(m.rematch, id)
	}
}

// Snapshot holds live matchmaking gauges.
type Snapshot struct {
	Waiting     int
	ActivePairs int
}

// Snapshot returns current queue and pairing counts.
func (m *Matchmaker) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{Waiting: m.waiting.Len(), ActivePairs: m.pairs.Len()}
}

// findPartner runs the matching step for id. Caller holds m.mu and has made
// sure id has a profile.
func (m *Matchmaker) findPartner(id string) {
	// A repeated request from a paired client silently drops the old
	// pairing first; the client is never paired twice at once.
	if partner, ok := m.pairs.Remove(id); ok {
		m.pairLog.PairEnded(id, partner, EndReasonRematch)
	}

	for {
		head, ok := m.waiting.Peek()
		if !ok || head == id {
			break
		}
		m.waiting.PopHead()
		if !m.conns.IsLive(head) {
			// Stale queue entry, the connection is already gone.
			continue
		}
		m.pairs.Add(id, head)
		m.pairLog.PairStarted(id, head)
		m.conns.Send(id, Event{Kind: EventPartnerFound})
		m.conns.Send(head, Event{Kind: EventPartnerFound})
		m.log.Info().Str("client", id).Str("partner", head).Msg("matched")
		return
	}

	if m.waiting.Push(id) {
		m.conns.Send(id, Event{Kind: EventSearching, Count: m.waiting.Len()})
	}
}

// scheduleRematch arms (or re-arms) the deferred re-entry for id. The timer
// fires outside the lock; by then id may be gone, and requeue fails closed.
// Caller holds m.mu.
func (m *Matchmaker) scheduleRematch(id string) {
	if t, ok := m.rematch[id]; ok {
		t.Stop()
	}
	m.rematch[id] = time.AfterFunc(m.delay, func() { m.requeue(id) })
}

// requeue is the deferred half of Skip.
func (m *Matchmaker) requeue(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rematch, id)
	if m.closed {
		return
	}
	if _, ok := m.profiles[id]; !ok {
		// Disconnected while the timer was pending.
		return
	}
	m.findPartner(id)
}
