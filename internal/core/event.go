package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventSearching tells a client it was placed in the waiting queue.
	EventSearching EventKind = iota
	// EventPartnerFound tells both sides of a fresh pairing they are matched.
	EventPartnerFound
	// EventMessage delivers a chat message from the client's partner.
	EventMessage
	// EventPartnerTyping relays the partner's typing indicator.
	EventPartnerTyping
	// EventPartnerDisconnected tells a client its partner's connection closed.
	EventPartnerDisconnected
	// EventPartnerSkipped tells a client its partner moved on.
	EventPartnerSkipped
)

// Event is sent to clients to describe what happened in the system.
// Only the fields relevant to the Kind are populated.
type Event struct {
	Kind      EventKind
	Count     int    // EventSearching: waiting-queue length, recipient included
	Text      string // EventMessage
	Timestamp string // EventMessage, UTC ISO-8601 with millisecond precision
	Typing    bool   // EventPartnerTyping
}
