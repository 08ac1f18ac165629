// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials.
//
// The package helps ensure that passwords, session cookies and other secrets
// are not accidentally exposed in logs or error messages shown to users.
package logging

import "regexp"

var (
	reJSONPassword = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]*)(")`)
	rePassword     = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reCookie       = regexp.MustCompile(`(?i)((?:set-)?cookie:\s*[^\s=;]+=)([^\s;]+)`)
	reBearer       = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reEnvSecret    = regexp.MustCompile(`(IDENTIKIT_PASSWORD=|SESSION_COOKIE=)([^\s;&]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// It covers password fields in JSON bodies and query strings, session cookie
// values in Cookie/Set-Cookie headers, and bearer-style tokens.
func Mask(s string) string {
	out := s
	out = reJSONPassword.ReplaceAllString(out, "$1***$3")
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reCookie.ReplaceAllString(out, "$1***")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reEnvSecret.ReplaceAllString(out, "$1***")
	return out
}
