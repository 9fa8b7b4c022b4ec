package core

// waitlist is the FIFO queue of unpaired clients looking for a partner.
// A client id appears at most once. Not safe for concurrent use; the
// matchmaker's lock covers it.
type waitlist struct {
	ids []string
}

// Peek returns the head without removing it.
func (w *waitlist) Peek() (string, bool) {
	if len(w.ids) == 0 {
		return "", false
	}
	return w.ids[0], true
}

// PopHead removes and returns the head.
func (w *waitlist) PopHead() (string, bool) {
	if len(w.ids) == 0 {
		return "", false
	}
	head := w.ids[0]
	w.ids = w.ids[1:]
	return head, true
}

// Push appends id to the tail. Returns false if id is already queued.
func (w *waitlist) Push(id string) bool {
	if w.Contains(id) {
		return false
	}
	w.ids = append(w.ids, id)
	return true
}

// Remove deletes id from the queue wherever it sits. Returns true if removed.
func (w *waitlist) Remove(id string) bool {
	for i, queued := range w.ids {
		if queued == id {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether id is queued.
func (w *waitlist) Contains(id string) bool {
	for _, queued := range w.ids {
		if queued == id {
			return true
		}
	}
	return false
}

// Len returns the number of waiting clients.
func (w *waitlist) Len() int {
	return len(w.ids)
}
