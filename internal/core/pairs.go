package core

// pairTable maps each paired client to its partner. Every pairing is stored
// as two directed entries, A→B and B→A, and the table keeps them symmetric:
// entries are only ever added and removed in pairs. Not safe for concurrent
// use; the matchmaker's lock covers it.
type pairTable struct {
	partner map[string]string
}

func newPairTable() pairTable {
	return pairTable{partner: make(map[string]string)}
}

// Partner returns the partner of id, if id is paired.
func (t pairTable) Partner(id string) (string, bool) {
	p, ok := t.partner[id]
	return p, ok
}

// Add records the pairing {a, b} in both directions.
func (t pairTable) Add(a, b string) {
	t.partner[a] = b
	t.partner[b] = a
}

// Remove deletes the pairing id belongs to, both directions, and returns the
// former partner. Returns false if id was not paired.
func (t pairTable) Remove(id string) (string, bool) {
	p, ok := t.partner[id]
	if !ok {
		return "", false
	}
	delete(t.partner, p)
	delete(t.partner, id)
	return p, true
}

// Len returns the number of active pairings.
func (t pairTable) Len() int {
	return len(t.partner) / 2
}
