// Package feed propagates product changes to live subscribers.
//
// A Hub keeps per-owner subscriber sets. Publish only signals that an
// owner's products changed; subscribers re-read the full snapshot
// themselves, so signals may be coalesced freely.
package feed

import "sync"

type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan struct{}]struct{})}
}

// Subscribe registers interest in ownerID's products. The returned channel
// receives a signal after every change. cancel must be called to release
// the subscription; it is safe to call more than once.
func (h *Hub) Subscribe(ownerID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	set, ok := h.subs[ownerID]
	if !ok {
		set = make(map[chan struct{}]struct{})
		h.subs[ownerID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if set, ok := h.subs[ownerID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, ownerID)
				}
			}
		})
	}
	return ch, cancel
}

// Publish signals every subscriber of ownerID without blocking. A pending
// undelivered signal absorbs the new one.
func (h *Hub) Publish(ownerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[ownerID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribers reports how many subscriptions ownerID currently has.
func (h *Hub) Subscribers(ownerID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[ownerID])
}
