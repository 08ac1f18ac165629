// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

// Canonical claim types. Name and email are always present on an
// authenticated principal; role claims come from the roles endpoint.
const (
	ClaimName  = "name"
	ClaimEmail = "email"
)

// Claim is a single assertion about the current user: a type/value pair,
// optionally carrying issuer metadata for role claims.
type Claim struct {
	Type           string
	Value          string
	ValueType      string
	Issuer         string
	OriginalIssuer string
}

// Principal is an immutable snapshot of the authenticated identity: an
// ordered set of claims. A new Principal is built on every state fetch;
// nothing mutates one in place.
type Principal struct {
	claims        []Claim
	roleStart     int
	authenticated bool
}

// Unauthenticated is the shared anonymous principal: zero claims, never
// mutated. Every failed or signed-out state fetch returns this exact value,
// so tests and callers may compare against it directly.
var Unauthenticated = &Principal{}

// newPrincipal builds an authenticated principal owning the given claims.
// Claims at index roleStart and beyond came from the roles endpoint.
func newPrincipal(claims []Claim, roleStart int) *Principal {
	return &Principal{claims: claims, roleStart: roleStart, authenticated: true}
}

// IsAuthenticated reports whether this snapshot represents a live session.
func (p *Principal) IsAuthenticated() bool { return p.authenticated }

// Claims returns a copy of the claim list in server order.
func (p *Principal) Claims() []Claim {
	out := make([]Claim, len(p.claims))
	copy(out, p.claims)
	return out
}

// claimValue returns the first claim value of the given type, or "".
func (p *Principal) claimValue(claimType string) string {
	for _, c := range p.claims {
		if c.Type == claimType {
			return c.Value
		}
	}
	return ""
}

// Name returns the canonical name claim value.
func (p *Principal) Name() string { return p.claimValue(ClaimName) }

// Email returns the canonical email claim value.
func (p *Principal) Email() string { return p.claimValue(ClaimEmail) }

// RoleClaims returns the claims appended from the roles endpoint, in server
// order. Role claim types are server-defined, so membership is tracked by
// position rather than a fixed type string.
func (p *Principal) RoleClaims() []Claim {
	if p.roleStart >= len(p.claims) {
		return nil
	}
	out := make([]Claim, len(p.claims)-p.roleStart)
	copy(out, p.claims[p.roleStart:])
	return out
}
