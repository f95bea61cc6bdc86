package journal

import (
	"sync"

	"github.com/sandevgo/jotbot/internal/core"
)

// Session owns one user's entry store and conversation transcript for
// the lifetime of the process. State is always passed explicitly so
// transports can run isolated sessions side by side.
type Session struct {
	ID string

	mu         sync.Mutex
	store      *Store
	transcript []core.Message
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		store: NewStore(),
	}
}

func (s *Session) Store() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store
}

// Reset discards all entries and the transcript by replacing the store
// wholesale. The store itself stays append-only.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = NewStore()
	s.transcript = nil
}

func (s *Session) AppendMessage(m core.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, m)
}

func (s *Session) Transcript() []core.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Sessions hands out one session per transport identity, creating it
// on first contact.
type Sessions struct {
	mu sync.Mutex
	m  map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{m: make(map[string]*Session)}
}

func (r *Sessions) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.m[id]
	if !ok {
		sess = NewSession(id)
		r.m[id] = sess
	}
	return sess
}
