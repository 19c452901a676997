package navigator

import "sync"

// Registry hands out one Navigator per session. The navigation context
// lives for the session only; it is never persisted.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*Navigator
	detectors map[string]*ScrollDetector
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions:  make(map[string]*Navigator),
		detectors: make(map[string]*ScrollDetector),
	}
}

// Get returns the session's Navigator, creating it in the initial state
// on first use.
func (r *Registry) Get(sessionID string) *Navigator {
	r.mu.Lock()
	defer r.mu.Unlock()
	nav, ok := r.sessions[sessionID]
	if !ok {
		nav = New()
		r.sessions[sessionID] = nav
	}
	return nav
}

// Detector returns the session's scroll detector, creating it on first use.
func (r *Registry) Detector(sessionID string) *ScrollDetector {
	r.mu.Lock()
	defer r.mu.Unlock()
	det, ok := r.detectors[sessionID]
	if !ok {
		det = NewScrollDetector()
		r.detectors[sessionID] = det
	}
	return det
}

// Drop discards the session's navigation context.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	delete(r.detectors, sessionID)
}
