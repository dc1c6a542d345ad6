package order

import "sync"

// Session is one customer's order form plus, after a successful
// submit, the rendered confirmation snapshot.
type Session struct {
	mu sync.Mutex

	Form         *FormContext
	Confirmation string
}

// Do runs fn with the session locked. The engine itself is
// single-threaded per session: every input event runs to completion
// before the next one is processed, which is what keeps the aggregate
// from ever being observed stale.
func (s *Session) Do(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Store holds live order sessions in memory. Orders do not persist
// across restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) Put(id string, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}
