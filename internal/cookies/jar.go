// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cookies implements a persistent cookie jar for the identity server.
// A browser keeps session cookies alive between page loads; a CLI process
// exits after every command, so the jar snapshots the identity origin's
// cookies to secure storage and restores them on the next invocation.
//
// Only cookies set by the configured identity origin are persisted. Expired
// cookies are dropped both when persisting and when restoring.
package cookies

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"
)

// Store abstracts cookie persistence. The production store is the OS
// keychain; tests substitute an in-memory implementation.
type Store interface {
	Save(data []byte) error
	Load() ([]byte, error)
	Clear() error
}

// persistedCookie is the serialized form of a session cookie. SetCookies
// receives full attributes, which http.CookieJar implementations do not
// expose back, so the jar records them here as they arrive.
type persistedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"http_only,omitempty"`
}

func (p persistedCookie) expired(now time.Time) bool {
	return !p.Expires.IsZero() && p.Expires.Before(now)
}

func (p persistedCookie) cookie() *http.Cookie {
	return &http.Cookie{
		Name:     p.Name,
		Value:    p.Value,
		Path:     p.Path,
		Domain:   p.Domain,
		Expires:  p.Expires,
		Secure:   p.Secure,
		HttpOnly: p.HTTPOnly,
	}
}

// Jar is an http.CookieJar that persists the identity origin's cookies
// through a Store. All other origins pass through to the inner jar only.
type Jar struct {
	mu     sync.Mutex
	inner  *cookiejar.Jar
	store  Store
	origin *url.URL
	held   map[string]persistedCookie // latest cookie per name for origin
}

// New builds a jar for the given identity origin, restoring any previously
// persisted session cookies. A corrupt or unreadable snapshot is treated as
// an empty one; cookie loss means a fresh login, not a broken CLI.
func New(origin *url.URL, store Store) (*Jar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &Jar{
		inner:  inner,
		store:  store,
		origin: origin,
		held:   make(map[string]persistedCookie),
	}
	j.restore()
	return j, nil
}

// restore loads the persisted snapshot into the inner jar.
func (j *Jar) restore() {
	data, err := j.store.Load()
	if err != nil || len(data) == 0 {
		return
	}
	var saved []persistedCookie
	if err := json.Unmarshal(data, &saved); err != nil {
		return
	}
	now := time.Now()
	live := make([]*http.Cookie, 0, len(saved))
	for _, p := range saved {
		if p.expired(now) {
			continue
		}
		j.held[p.Name] = p
		live = append(live, p.cookie())
	}
	if len(live) > 0 {
		j.inner.SetCookies(j.origin, live)
	}
}

// Cookies implements http.CookieJar. The lock covers Clear swapping the
// inner jar out from under a concurrent read.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

// SetCookies implements http.CookieJar. Cookies from the identity origin are
// additionally snapshotted to the store so the session survives the process.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.inner.SetCookies(u, cookies)
	if u.Host != j.origin.Host {
		return
	}

	now := time.Now()
	for _, c := range cookies {
		p := persistedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		}
		if c.MaxAge > 0 {
			p.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
		// MaxAge<0 or an already-past Expires is a deletion
		if c.MaxAge < 0 || p.expired(now) {
			delete(j.held, c.Name)
			continue
		}
		j.held[c.Name] = p
	}
	j.persistLocked()
}

// persistLocked writes the current origin snapshot. Best effort: a keychain
// hiccup should not fail the HTTP call that set the cookie.
func (j *Jar) persistLocked() {
	if len(j.held) == 0 {
		_ = j.store.Clear()
		return
	}
	snapshot := make([]persistedCookie, 0, len(j.held))
	for _, p := range j.held {
		snapshot = append(snapshot, p)
	}
	if data, err := json.Marshal(snapshot); err == nil {
		_ = j.store.Save(data)
	}
}

// Clear drops all cookies for the identity origin, in memory and in the store.
func (j *Jar) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	// cookiejar has no removal API; replace the inner jar wholesale.
	inner, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	j.inner = inner
	j.held = make(map[string]persistedCookie)
	return j.store.Clear()
}
