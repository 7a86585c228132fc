package session

import (
	"sync"

	"go.uber.org/atomic"
)

// Observer is notified after every dispatched action.
type Observer interface {
	Observe(a Action, before, after State, notice Notice)
}

// Session owns one State and serializes the actions applied to it.
type Session struct {
	mu       sync.Mutex
	state    State
	observer Observer
}

func New(observer Observer) *Session {
	return &Session{state: Initial(), observer: observer}
}

// Dispatch reduces a into the session and returns the resulting state and notice.
func (s *Session) Dispatch(a Action) (State, Notice) {
	s.mu.Lock()
	before := s.state
	after, notice := Reduce(before, a)
	s.state = after
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.Observe(a, before, after, notice)
	}
	return after, notice
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Store keeps one Session per user key. Sessions are created lazily in the initial state
// and live until the process exits.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	observer Observer
	created  *atomic.Int64
}

func NewStore(observer Observer) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		observer: observer,
		created:  atomic.NewInt64(0),
	}
}

// Get returns the session for key, creating it on first use.
func (st *Store) Get(key string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[key]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[key]; ok {
		return s
	}
	s = New(st.observer)
	st.sessions[key] = s
	st.created.Inc()
	return s
}

// Peek returns the session for key without creating it.
func (st *Store) Peek(key string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[key]
	return s, ok
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Created reports how many sessions have been opened since start.
func (st *Store) Created() int64 {
	return st.created.Load()
}
