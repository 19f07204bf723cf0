package quiz

import "sync"

// Registry keeps at most one exam session per user. Starting a new one
// replaces the prior session wholesale; nothing is merged or reused.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	source   QuestionSource
	opts     Options
}

func NewRegistry(source QuestionSource, opts Options) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		source:   source,
		opts:     opts,
	}
}

func (r *Registry) Get(user string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[user]
	return s, ok
}

// New creates a fresh session for user, closing any prior one so its timer
// stops and any in-flight generation resolves into nothing.
func (r *Registry) New(user string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.sessions[user]; ok {
		old.Close()
	}
	s := NewSession(r.source, r.opts)
	r.sessions[user] = s
	return s
}
