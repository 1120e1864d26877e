package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/codefm/teachernotebook/core"
	"github.com/codefm/teachernotebook/core/locale"
)

const loginPath = "/public/auth/login"

var nowFunc = time.Now // mockable

type loginResponse struct {
	UserName    string `json:"userName"`
	AccessToken string `json:"accessToken"`
}

// Service owns session creation and destruction. Login is the only
// operation that talks to the network; every other authenticated call goes
// through the request gateway instead.
type Service struct {
	store   Store
	locales *locale.Resolver
	log     core.Logger
	client  *http.Client
	baseURL string

	mu   sync.Mutex
	subs []func()
}

func NewService(baseURL string, store Store, locales *locale.Resolver, log core.Logger) *Service {
	return &Service{
		store:   store,
		locales: locales,
		log:     log,
		client:  &http.Client{Timeout: core.Conf.GetDuration("httpTimeout")},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Login exchanges the credentials for a session and returns the user's
// display name. A 404 from the backend means unknown credentials; every
// other failure collapses to ErrAuthentication.
func (svc *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = core.CleanString(username)
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "building login request")
	}
	req.SetBasicAuth(username, password)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept-Language", svc.locales.Get().String())

	resp, err := svc.client.Do(req)
	if err != nil {
		svc.log.Error("login request failed", err)
		return "", ErrAuthentication
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		svc.log.Warn("login rejected", map[string]interface{}{"status": resp.StatusCode})
		return "", ErrAuthentication
	}

	var data loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		svc.log.Error("decoding login response", err)
		return "", ErrAuthentication
	}

	sess := Session{
		Username:    data.UserName,
		AccessToken: data.AccessToken,
		CreatedAt:   nowFunc().UTC(),
	}
	if err := svc.store.SaveSession(sess); err != nil {
		return "", errors.Wrap(err, "saving session")
	}
	return data.UserName, nil
}

// Current returns the active session, or ErrNoActiveSession.
func (svc *Service) Current() (Session, error) {
	return svc.store.ReadSession()
}

// AccessToken returns the active bearer token, or "" when logged out.
func (svc *Service) AccessToken() string {
	sess, err := svc.store.ReadSession()
	if err != nil {
		return ""
	}
	return sess.AccessToken
}

// Logout destroys the session on explicit user action.
func (svc *Service) Logout() {
	_ = svc.store.ClearSession()
}

// ForceLogout destroys the session and notifies registered subscribers so
// the rest of the application can return to an unauthenticated view. This
// is the only way a session is invalidated outside explicit logout.
func (svc *Service) ForceLogout() {
	_ = svc.store.ClearSession()

	svc.mu.Lock()
	subs := make([]func(), len(svc.subs))
	copy(subs, svc.subs)
	svc.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnForceLogout registers fn to run whenever the session is invalidated by
// the server. The locale preference is deliberately left untouched.
func (svc *Service) OnForceLogout(fn func()) {
	svc.mu.Lock()
	svc.subs = append(svc.subs, fn)
	svc.mu.Unlock()
}
