// Package state implements the client-side stores: the in-memory session
// store (one application run, never written to disk) and the file-backed
// locale store (survives restarts).
package state

import (
	"sync"

	"github.com/codefm/teachernotebook/core/session"
)

type SessionStore struct {
	mutex sync.RWMutex
	sess  *session.Session
}

var _ session.Store = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (store *SessionStore) SaveSession(sess session.Session) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	store.sess = &sess // overwrites any prior session
	return nil
}

func (store *SessionStore) ReadSession() (session.Session, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	if store.sess == nil {
		return session.Session{}, session.ErrNoActiveSession
	}
	return *store.sess, nil
}

func (store *SessionStore) ClearSession() error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	store.sess = nil
	return nil
}
