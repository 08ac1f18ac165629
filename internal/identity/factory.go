// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package identity

import "net/http"

// New creates an identity API implementation for the given base URL.
// The jar carries the session cookie between calls; pass nil for a client
// that never retains a session (register-only flows, probes).
func New(baseURL string, endpoints Endpoints, jar http.CookieJar) API {
	return newHTTP(baseURL, endpoints, jar)
}
