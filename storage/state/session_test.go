package state

import (
	"testing"
	"time"

	"github.com/codefm/teachernotebook/core/session"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	if _, err := store.ReadSession(); err != session.ErrNoActiveSession {
		t.Fatalf("ReadSession() on empty store = %v; want ErrNoActiveSession", err)
	}

	sess := session.Session{
		Username:    "Ms. Honey",
		AccessToken: "tok-123",
		CreatedAt:   time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	}
	if err := store.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := store.ReadSession()
	if err != nil {
		t.Fatalf("ReadSession() failed: %v", err)
	}
	if got != sess {
		t.Errorf("ReadSession() = %+v; want %+v", got, sess)
	}

	// a new login overwrites the prior session
	next := session.Session{Username: "Mr. Wickham", AccessToken: "tok-456", CreatedAt: sess.CreatedAt}
	if err := store.SaveSession(next); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if got, _ := store.ReadSession(); got != next {
		t.Errorf("ReadSession() = %+v; want %+v", got, next)
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}
	if _, err := store.ReadSession(); err != session.ErrNoActiveSession {
		t.Errorf("ReadSession() after clear = %v; want ErrNoActiveSession", err)
	}
}
