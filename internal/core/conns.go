package core

// Conns is the matchmaker's view of the transport layer. IsLive must be
// accurate at call time: a client reported live must be reachable for an
// immediate Send. Send is best-effort and must not block.
type Conns interface {
	IsLive(id string) bool
	Send(id string, ev Event) bool
}

// Pair end reasons reported to the PairLog.
const (
	EndReasonSkip       = "skip"
	EndReasonDisconnect = "disconnect"
	EndReasonRematch    = "rematch"
)

// PairLog receives pairing lifecycle hooks for accounting. Implementations
// must be fast or hand off asynchronously; the matchmaker calls them while
// holding its lock.
type PairLog interface {
	PairStarted(a, b string)
	PairEnded(a, b, reason string)
}

// nopPairLog is used when no log is wired.
type nopPairLog struct{}

func (nopPairLog) PairStarted(a, b string) {}

func (nopPairLog) PairEnded(a, b, reason string) {}
