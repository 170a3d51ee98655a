// Package store holds the per-screen session state machines of the
// admin surface. Every store owns one screen's data, toggles a shared
// loading flag around network calls, converts failures into
// notifications at its boundary, and keeps prior state when a write
// fails.
//
// Responses are sequenced with a per-store generation counter: each
// outgoing request takes the next generation, and a response is only
// applied while its generation is still the latest. Late responses
// from abandoned requests are discarded instead of clobbering newer
// state.
package store

import "sync"

// tracker is the shared loading/generation state embedded in every
// store. Embedding it also provides the store's mutex.
type tracker struct {
	mu      sync.Mutex
	gen     uint64
	loading int
}

// begin registers a new in-flight request and returns its generation.
func (t *tracker) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.loading++
	return t.gen
}

// finish clears the loading flag for a completed request and reports
// whether its response is still current. On true the mutex is held
// and the caller must unlock after applying the response; on false
// the response must be discarded.
func (t *tracker) finish(g uint64) bool {
	t.mu.Lock()
	t.loading--
	if g != t.gen {
		t.mu.Unlock()
		return false
	}
	return true
}

// Loading reports whether any request is in flight; the UI blocks
// interaction while true.
func (t *tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading > 0
}
