// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cookies

import (
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	data []byte
	err  error
}

func (m *memStore) Save(data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memStore) Load() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

func (m *memStore) Clear() error {
	m.data = nil
	return m.err
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestSessionCookieSurvivesNewJar(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	store := &memStore{}

	first, err := New(origin, store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	first.SetCookies(origin, []*http.Cookie{
		{Name: "session", Value: "s3cret", Path: "/", Expires: time.Now().Add(time.Hour)},
	})
	if len(store.data) == 0 {
		t.Fatal("store is empty after SetCookies")
	}

	// a fresh jar over the same store simulates the next CLI invocation
	second, err := New(origin, store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got := second.Cookies(origin)
	if len(got) != 1 || got[0].Name != "session" || got[0].Value != "s3cret" {
		t.Errorf("restored cookies = %+v, want the session cookie", got)
	}
}

func TestForeignOriginNotPersisted(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	other := mustURL(t, "https://tracker.example.net")
	store := &memStore{}

	jar, err := New(origin, store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	jar.SetCookies(other, []*http.Cookie{{Name: "tracker", Value: "x", Path: "/"}})

	if len(store.data) != 0 {
		t.Errorf("store holds %q for a foreign origin, want empty", store.data)
	}
	// the inner jar still serves it for the live process
	if got := jar.Cookies(other); len(got) != 1 {
		t.Errorf("in-memory cookies for other origin = %+v, want 1", got)
	}
}

func TestMaxAgePersistedAsExpiry(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	store := &memStore{}

	jar, _ := New(origin, store)
	jar.SetCookies(origin, []*http.Cookie{{Name: "session", Value: "v", Path: "/", MaxAge: 3600}})

	second, _ := New(origin, store)
	if got := second.Cookies(origin); len(got) != 1 {
		t.Errorf("restored cookies = %+v, want 1", got)
	}
}

func TestDeletionCookieRemovesSnapshot(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	store := &memStore{}

	jar, _ := New(origin, store)
	jar.SetCookies(origin, []*http.Cookie{
		{Name: "session", Value: "v", Path: "/", Expires: time.Now().Add(time.Hour)},
	})
	// server-side logout sends MaxAge=-1
	jar.SetCookies(origin, []*http.Cookie{{Name: "session", Value: "", Path: "/", MaxAge: -1}})

	second, _ := New(origin, store)
	if got := second.Cookies(origin); len(got) != 0 {
		t.Errorf("restored cookies = %+v, want none after deletion", got)
	}
}

func TestExpiredCookieDroppedOnRestore(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	store := &memStore{
		data: []byte(`[{"name":"session","value":"old","path":"/","expires":"2020-01-01T00:00:00Z"}]`),
	}

	jar, err := New(origin, store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := jar.Cookies(origin); len(got) != 0 {
		t.Errorf("restored cookies = %+v, want none", got)
	}
}

func TestCorruptSnapshotTreatedAsEmpty(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	store := &memStore{data: []byte(`{not json`)}

	jar, err := New(origin, store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := jar.Cookies(origin); len(got) != 0 {
		t.Errorf("restored cookies = %+v, want none", got)
	}
}

func TestUnreadableStoreTreatedAsEmpty(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	store := &memStore{err: errors.New("keychain locked")}

	jar, err := New(origin, store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := jar.Cookies(origin); len(got) != 0 {
		t.Errorf("restored cookies = %+v, want none", got)
	}
}

// A fetch overlapping a logout must not race Clear's inner-jar replacement.
// Meaningful under the race detector.
func TestClearDuringReads(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	jar, err := New(origin, &memStore{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	jar.SetCookies(origin, []*http.Cookie{
		{Name: "session", Value: "v", Path: "/", Expires: time.Now().Add(time.Hour)},
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				_ = jar.Cookies(origin)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for n := 0; n < 200; n++ {
			_ = jar.Clear()
		}
	}()
	wg.Wait()
}

func TestClear(t *testing.T) {
	origin := mustURL(t, "https://id.example.com")
	store := &memStore{}

	jar, _ := New(origin, store)
	jar.SetCookies(origin, []*http.Cookie{
		{Name: "session", Value: "v", Path: "/", Expires: time.Now().Add(time.Hour)},
	})

	if err := jar.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := jar.Cookies(origin); len(got) != 0 {
		t.Errorf("cookies after Clear = %+v, want none", got)
	}
	if len(store.data) != 0 {
		t.Errorf("store after Clear = %q, want empty", store.data)
	}
}
