package eventbus

import "sync"

// subscriberSet holds the bus's subscribers behind a sync.RWMutex.
//
// Writers replace the slice instead of mutating it, so a snapshot returned by
// list stays valid and unchanged while a delivery iterates over it, even if
// subscribers are added or removed concurrently.
type subscriberSet struct {
	mu      sync.RWMutex
	entries []entry
	nextID  uint64
}

type entry struct {
	id  uint64
	sub Subscriber
}

// list returns the current subscribers under a read lock.
func (s *subscriberSet) list() []Subscriber {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Subscriber, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.sub
	}
	return out
}

// add registers sub and returns its handle for remove.
func (s *subscriberSet) add(sub Subscriber) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	next := make([]entry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	s.entries = append(next, entry{id: s.nextID, sub: sub})
	return s.nextID
}

// remove drops the subscriber registered under id. Unknown ids are ignored.
func (s *subscriberSet) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.id != id {
			next = append(next, e)
		}
	}
	s.entries = next
}

// len returns the number of subscribers.
func (s *subscriberSet) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
