package session

import "sync"

// Marker records invite codes already resolved in this session so repeated
// delivery of the same deep link stays idempotent. Codes are marked, never
// unmarked, for the session's lifetime. This is a client-side fact only,
// independent of whether the server considers the code consumed.
type Marker interface {
	Has(code string) bool
	Mark(code string)
}

// InviteMarker is the in-process Marker. Safe for use from the async tasks
// the UI loop spawns.
type InviteMarker struct {
	mu    sync.Mutex
	codes map[string]struct{}
}

func NewInviteMarker() *InviteMarker {
	return &InviteMarker{codes: make(map[string]struct{})}
}

func (m *InviteMarker) Has(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.codes[code]
	return ok
}

func (m *InviteMarker) Mark(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[code] = struct{}{}
}
