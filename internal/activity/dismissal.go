package activity

import (
	"sync"

	"freelancehub/internal/common"
)

// DismissalStore holds per-session sets of dismissed notification ids.
// Dismissal is display state, not domain state: it lives only in memory,
// is append-only for the life of the session, and vanishes with the process.
type DismissalStore struct {
	mu       sync.Mutex
	sessions map[string]map[common.UUID]struct{}
}

func NewDismissalStore() *DismissalStore {
	return &DismissalStore{sessions: make(map[string]map[common.UUID]struct{})}
}

func (s *DismissalStore) Dismiss(sessionKey string, id common.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sessions[sessionKey]
	if !ok {
		set = make(map[common.UUID]struct{})
		s.sessions[sessionKey] = set
	}
	set[id] = struct{}{}
}

// Set returns a copy of the session's dismissed ids, safe to read without
// holding the store's lock.
func (s *DismissalStore) Set(sessionKey string) map[common.UUID]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.sessions[sessionKey]
	out := make(map[common.UUID]struct{}, len(set))
	for id := range set {
		out[id] = struct{}{}
	}
	return out
}

// Drop removes a session's dismissals, for use when the session ends.
func (s *DismissalStore) Drop(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey)
}
