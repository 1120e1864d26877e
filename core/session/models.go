package session

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNoActiveSession    = errors.New("no active session")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthentication     = errors.New("authentication failed")
	ErrEmptyCredentials   = errors.New("username and password are required")
)

// Session is the authenticated user's display name, bearer token and
// creation time. It lives for the lifetime of the running application;
// validity is determined entirely by the server's acceptance of the
// bearer token on each request.
type Session struct {
	Username    string    `json:"userName"`
	AccessToken string    `json:"accessToken"`
	CreatedAt   time.Time `json:"createdAt"` // UTC
}

// Store holds at most one session at a time.
type Store interface {
	SaveSession(sess Session) error
	// ReadSession returns ErrNoActiveSession when no session is stored.
	ReadSession() (Session, error)
	ClearSession() error
}
