// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package identity provides the wire client for cookie-session identity APIs.
// It defines the API contract for registration, login, current-user and role
// queries, and logout, together with an HTTP implementation. Failures are
// reported as typed errors (see internal/errs) so higher layers can
// distinguish a dead network from a rejecting server.
package identity

import "context"

// API defines the identity server operations the client depends on.
// Implementations may call the real HTTP endpoints or provide mocks for tests.
type API interface {
	// Register creates an account. On a validation rejection the server's
	// error messages are returned in wire order alongside the status error;
	// on success both returns are nil.
	Register(ctx context.Context, email, password string) (messages []string, err error)
	// Login authenticates with email and password, requesting cookie-based
	// session issuance. A nil error means the session cookie is in the jar.
	Login(ctx context.Context, email, password string) error
	// CurrentUser retrieves the authenticated user's info and claims.
	CurrentUser(ctx context.Context) (*UserInfo, error)
	// Roles retrieves the authenticated user's role claims.
	Roles(ctx context.Context) ([]RoleClaim, error)
	// Logout invalidates the current session on the server.
	Logout(ctx context.Context) error
	// Ping reports whether the identity server is reachable at all.
	Ping(ctx context.Context) error
}

// UserInfo is the current-user endpoint payload.
type UserInfo struct {
	Email  string      `json:"email"`
	Claims []UserClaim `json:"claims"`
}

// UserClaim is a key/value claim attached to the user info payload.
type UserClaim struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RoleClaim is one entry of the roles endpoint payload.
type RoleClaim struct {
	Type           string `json:"type"`
	Value          string `json:"value"`
	ValueType      string `json:"valueType"`
	Issuer         string `json:"issuer"`
	OriginalIssuer string `json:"originalIssuer"`
}
