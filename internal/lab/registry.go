package lab

import "sync"

// Registry keeps at most one lab session per user; selecting a scenario
// replaces any running one.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Get(user string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[user]
	return s, ok
}

func (r *Registry) Put(user string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[user] = s
}
