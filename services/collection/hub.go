package collection

import "sync"

// hub is a small process-local observer registry: views subscribe to a
// (owner, key) pair and get called after each mutation, so a mutation in
// one mounted view is reflected live in any other without a remount-time
// reload.
type hub struct {
	mu   sync.RWMutex
	subs map[string][]func()
}

func newHub() *hub {
	return &hub{subs: make(map[string][]func())}
}

func hubKey(owner, key string) string {
	return owner + ":" + key
}

func (h *hub) subscribe(owner, key string, fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	k := hubKey(owner, key)
	h.subs[k] = append(h.subs[k], fn)
}

func (h *hub) publish(owner, key string) {
	h.mu.RLock()
	fns := h.subs[hubKey(owner, key)]
	h.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
