// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package transport decorates outgoing identity API requests.
// The identity server content-negotiates on the X-Requested-With marker:
// requests carrying it get JSON 401 responses instead of login-page
// redirects meant for browser navigation. The decorator stamps that marker
// and a CLI User-Agent on every request, for every operation, so no call
// site can forget it. Cookie inclusion itself is handled by the cookie jar
// the HTTP client is constructed with.
package transport

import (
	"net/http"

	"identikit/cli/internal/logging"
)

// XHR marker header, matching what browsers send for programmatic requests.
const (
	requestedWithHeader = "X-Requested-With"
	requestedWithValue  = "XMLHttpRequest"
)

// UserAgent identifies the CLI to the identity server.
const UserAgent = "identikit-cli/1.0"

// Credentialed is an http.RoundTripper that marks every request as
// programmatic. Stateless per call; no retry, no backoff.
type Credentialed struct {
	// Base is the underlying transport. nil falls back to
	// http.DefaultTransport.
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper. The incoming request is cloned
// before mutation, as the RoundTripper contract requires.
func (c *Credentialed) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set(requestedWithHeader, requestedWithValue)
	if out.Header.Get("User-Agent") == "" {
		out.Header.Set("User-Agent", UserAgent)
	}

	base := c.Base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(out)
	evt := logging.Logger.Debug().Str("method", out.Method).Str("path", out.URL.Path)
	if err != nil {
		evt.Err(err).Msg("identity request failed")
		return nil, err
	}
	evt.Int("status", resp.StatusCode).Msg("identity request")
	return resp, nil
}
