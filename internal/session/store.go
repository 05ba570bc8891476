// Package session keeps per-visitor checkout sessions in process memory.
// The cart is process-local and single-owner, so no external store backs it.
package session

import (
	"sync"

	"github.com/google/uuid"

	"storefront/internal/checkout"
)

type Store struct {
	mu       sync.Mutex
	sessions map[string]*checkout.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*checkout.Session)}
}

func (st *Store) Get(id string) (*checkout.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// Put registers a new session and returns its id.
func (st *Store) Put(sess *checkout.Session) string {
	id := uuid.New().String()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[id] = sess
	return id
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
