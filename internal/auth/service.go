// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth tracks authenticated-identity state against a cookie-session
// identity server. It turns the wire client's responses into immutable
// principal snapshots, notifies subscribers when the state may have changed,
// and never lets a wire failure escape as anything other than a safe default
// plus a typed cause.
//
// Operations follow a strict collapse rule: any failure along a state fetch,
// including a roles fetch after a successful user-info fetch, yields the
// shared Unauthenticated principal. The typed error return says why.
package auth

import (
	"context"
	"sync/atomic"

	"identikit/cli/internal/identity"
	"identikit/cli/internal/logging"
)

// Service centralizes authentication operations against the identity server.
// The zero Service is not usable; construct with NewService.
type Service struct {
	api      identity.API
	notifier notifier
	current  atomic.Pointer[Principal]
}

// NewService constructs an auth Service over the given wire client.
func NewService(api identity.API) *Service {
	s := &Service{api: api}
	s.current.Store(Unauthenticated)
	return s
}

// Subscribe registers a callback invoked with the fresh principal whenever
// authentication state may have changed (login, logout). It returns the
// unsubscribe function.
func (s *Service) Subscribe(fn func(*Principal)) func() {
	return s.notifier.subscribe(fn)
}

// Current returns the last recorded snapshot without a round trip. It is a
// convenience cache only, valid immediately after the last fetch; callers
// needing truth use FetchState or IsAuthenticated.
func (s *Service) Current() *Principal {
	return s.current.Load()
}

// Register creates an account. The FormResult is always usable: success with
// no messages, the server's validation messages in wire order, or the
// generic fallback when the failure produced no messages. The error return
// carries the typed cause and may be ignored.
func (s *Service) Register(ctx context.Context, email, password string) (FormResult, error) {
	messages, err := s.api.Register(ctx, email, password)
	if err == nil {
		return succeeded(), nil
	}
	logging.Logger.Debug().Err(err).Msg("register failed")
	if len(messages) > 0 {
		return failed(messages...), err
	}
	return failed(RegisterFallbackMessage), err
}

// Login authenticates with cookie-session issuance. On success it performs a
// fresh state fetch, notifies subscribers exactly once with the result, and
// reports success. Every failure collapses to the fixed invalid-credentials
// message; the typed cause rides on the error return.
func (s *Service) Login(ctx context.Context, email, password string) (FormResult, error) {
	if err := s.api.Login(ctx, email, password); err != nil {
		logging.Logger.Debug().Err(err).Msg("login failed")
		return failed(InvalidCredentialsMessage), err
	}
	p, _ := s.FetchState(ctx)
	s.notifier.notify(p)
	return succeeded(), nil
}

// FetchState builds a fresh principal from the info and roles endpoints and
// publishes it as the current snapshot. Any failure along the way, including
// a roles fetch failing after a successful info fetch, publishes and returns
// the Unauthenticated singleton together with the typed cause.
func (s *Service) FetchState(ctx context.Context) (*Principal, error) {
	info, err := s.api.CurrentUser(ctx)
	if err != nil {
		return s.collapse(err)
	}

	claims := []Claim{
		{Type: ClaimName, Value: info.Email},
		{Type: ClaimEmail, Value: info.Email},
	}
	for _, c := range info.Claims {
		// canonical claims are already present; skip duplicates
		if c.Key == ClaimName || c.Key == ClaimEmail {
			continue
		}
		claims = append(claims, Claim{Type: c.Key, Value: c.Value})
	}
	roleStart := len(claims)

	roles, err := s.api.Roles(ctx)
	if err != nil {
		return s.collapse(err)
	}
	for _, r := range roles {
		if r.Type == "" || r.Value == "" {
			continue
		}
		claims = append(claims, Claim{
			Type:           r.Type,
			Value:          r.Value,
			ValueType:      r.ValueType,
			Issuer:         r.Issuer,
			OriginalIssuer: r.OriginalIssuer,
		})
	}

	p := newPrincipal(claims, roleStart)
	s.current.Store(p)
	return p, nil
}

// collapse records and returns the unauthenticated state with its cause.
func (s *Service) collapse(err error) (*Principal, error) {
	logging.Logger.Debug().Err(err).Msg("state fetch collapsed to unauthenticated")
	s.current.Store(Unauthenticated)
	return Unauthenticated, err
}

// IsAuthenticated always performs a full state-fetch round trip and reports
// the fresh snapshot's authenticated bit; it never trusts a stale cache.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	p, err := s.FetchState(ctx)
	return p.IsAuthenticated(), err
}

// Logout ends the session on the server (best effort), then performs a fresh
// state fetch and notifies subscribers exactly once regardless of whether
// the logout call itself succeeded.
func (s *Service) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	if err != nil {
		logging.Logger.Debug().Err(err).Msg("remote logout failed")
	}
	p, _ := s.FetchState(ctx)
	s.notifier.notify(p)
	return err
}
