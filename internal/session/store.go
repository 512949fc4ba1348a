package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned for an unknown or ended session
var ErrSessionNotFound = errors.New("session not found")

// Store tracks the live sessions of one server
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create starts an empty session under a fresh ID
func (st *Store) Create() *Session {
	s := New(uuid.NewString())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "id %s", id)
	}
	return s, nil
}

// Delete ends a session and discards its state
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return errors.Wrapf(ErrSessionNotFound, "id %s", id)
	}
	delete(st.sessions, id)
	return nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
