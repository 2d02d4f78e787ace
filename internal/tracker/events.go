package tracker

// Subscribe registers a listener for rating writes. The returned channel
// is buffered; events for slow consumers are dropped rather than blocking
// the write path.
func (t *Tracker) Subscribe() chan Event {
	ch := make(chan Event, 16)
	t.subMu.Lock()
	t.subs[ch] = struct{}{}
	t.subMu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel
func (t *Tracker) Unsubscribe(ch chan Event) {
	t.subMu.Lock()
	defer t.subMu.Unlock()
	if _, ok := t.subs[ch]; ok {
		delete(t.subs, ch)
		close(ch)
	}
}

func (t *Tracker) publish(ev Event) {
	t.subMu.Lock()
	defer t.subMu.Unlock()
	for ch := range t.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
