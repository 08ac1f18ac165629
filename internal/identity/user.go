// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package identity

import (
	"context"
)

// CurrentUser calls the info endpoint and returns the authenticated user's
// email and claims. A 401 (no live session) surfaces as an UnexpectedStatus
// error like any other rejection; the caller decides what unauthenticated
// means.
func (h *HTTP) CurrentUser(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := h.getJSON(ctx, h.url(h.endpoints.Info), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Roles calls the roles endpoint and returns the user's role claim entries
// verbatim; filtering of empty entries belongs to the principal builder.
func (h *HTTP) Roles(ctx context.Context) ([]RoleClaim, error) {
	var roles []RoleClaim
	if err := h.getJSON(ctx, h.url(h.endpoints.Roles), &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
