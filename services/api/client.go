package apisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/codefm/teachernotebook/core"
	"github.com/codefm/teachernotebook/core/i18n"
	"github.com/codefm/teachernotebook/core/locale"
	"github.com/codefm/teachernotebook/core/session"
)

type (
	// Sessions is the slice of the session service the gateway needs:
	// the current bearer token, and the forced-logout trigger.
	Sessions interface {
		AccessToken() string
		ForceLogout()
	}

	// Client is the single chokepoint every authenticated HTTP call goes
	// through. It validates a token is present before sending, builds the
	// common headers, and normalizes all non-2xx responses into a
	// *core.APIError.
	Client struct {
		base     string
		client   *http.Client
		sessions Sessions
		locales  *locale.Resolver
		log      core.Logger
	}
)

func NewClient(baseURL string, sessions Sessions, locales *locale.Resolver, log core.Logger) *Client {
	return &Client{
		base:     strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: core.Conf.GetDuration("httpTimeout")},
		sessions: sessions,
		locales:  locales,
		log:      log,
	}
}

func (c *Client) Get(ctx context.Context, base, path string, out interface{}, headers ...http.Header) error {
	return c.do(ctx, http.MethodGet, base, path, nil, out, headers)
}

func (c *Client) Post(ctx context.Context, base, path string, body, out interface{}, headers ...http.Header) error {
	return c.do(ctx, http.MethodPost, base, path, body, out, headers)
}

func (c *Client) Put(ctx context.Context, base, path string, body, out interface{}, headers ...http.Header) error {
	return c.do(ctx, http.MethodPut, base, path, body, out, headers)
}

func (c *Client) Patch(ctx context.Context, base, path string, body, out interface{}, headers ...http.Header) error {
	return c.do(ctx, http.MethodPatch, base, path, body, out, headers)
}

func (c *Client) Delete(ctx context.Context, base, path string, out interface{}, headers ...http.Header) error {
	return c.do(ctx, http.MethodDelete, base, path, nil, out, headers)
}

func (c *Client) do(ctx context.Context, method, base, path string, body, out interface{}, headers []http.Header) error {
	// token precondition; no network call is made without one
	token := c.sessions.AccessToken()
	if token == "" {
		c.sessions.ForceLogout()
		return session.ErrNoActiveSession
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshalling request body")
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.base + base + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return errors.Wrapf(err, "building %s %s request", method, url)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", c.locales.Get().String())
	req.Header.Set("X-Request-Id", uuid.New().String())
	// caller headers override the defaults
	for _, hdr := range headers {
		for key, vals := range hdr {
			for i, val := range vals {
				if i == 0 {
					req.Header.Set(key, val)
				} else {
					req.Header.Add(key, val)
				}
			}
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, url)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	c.log.Debug("api call", map[string]interface{}{
		"method": method, "url": url, "status": resp.StatusCode,
	})

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.sessions.ForceLogout()
		return core.NewSessionExpiredError(i18n.T(c.locales.Get(), "login.errors.sessionExpired"))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	// some DELETE responses carry no content
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, url)
	}
	return nil
}

// decodeError returns the backend's structured error as is, or synthesizes
// one when the body cannot be parsed.
func (c *Client) decodeError(resp *http.Response) error {
	data, _ := ioutil.ReadAll(resp.Body)

	var apiErr core.APIError
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Code != "" {
		return &apiErr
	}
	return &core.APIError{
		Code:        strconv.Itoa(resp.StatusCode),
		Description: http.StatusText(resp.StatusCode),
		Detail:      "unknown error",
	}
}
