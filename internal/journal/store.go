package journal

import (
	"sync"

	"github.com/sandevgo/jotbot/internal/core"
)

// Store is the ordered, append-only entry collection for one session.
// Appends never fail; reads hand out copies so callers cannot reach
// the backing slice.
type Store struct {
	mu      sync.RWMutex
	entries []core.Entry
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(e core.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

// All returns the entries in insertion order.
func (s *Store) All() []core.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Filter returns the ordered subsequence for which keep is true.
func (s *Store) Filter(keep func(core.Entry) bool) []core.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entry, 0)
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
