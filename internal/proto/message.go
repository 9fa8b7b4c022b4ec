package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

const (
	InboundTypeFindPartner = "find-partner"
	InboundTypeSendMessage = "send-message"
	InboundTypeTyping      = "typing"
	InboundTypeSkipPartner = "skip-partner"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"
)

// Outbound event names.
const (
	EventSearching           = "searching"
	EventPartnerFound        = "partner-found"
	EventReceiveMessage      = "receive-message"
	EventPartnerTyping       = "partner-typing"
	EventPartnerDisconnected = "partner-disconnected"
	EventPartnerSkipped      = "partner-skipped"
)

// FindPartnerData carries the client's stated preferences. Both fields are
// optional; language defaults server-side.
type FindPartnerData struct {
	Interests []string `json:"interests"`
	Language  string   `json:"language"`
}

// SendMessageData is a chat message for the client's current partner.
type SendMessageData struct {
	Text string `json:"text"`
}

// The typing inbound carries a bare JSON boolean as its data.

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// SearchingData reports the waiting-queue length, recipient included.
type SearchingData struct {
	Count int `json:"count"`
}

// ReceiveMessageData delivers a partner's message with its generation time.
type ReceiveMessageData struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
