package auth

import "testing"

func TestUnauthenticatedPrincipal(t *testing.T) {
	if Unauthenticated.IsAuthenticated() {
		t.Error("Unauthenticated.IsAuthenticated() = true")
	}
	if got := Unauthenticated.Claims(); len(got) != 0 {
		t.Errorf("Claims() = %+v, want none", got)
	}
	if Unauthenticated.Name() != "" || Unauthenticated.Email() != "" {
		t.Error("anonymous principal has a name or email")
	}
	if got := Unauthenticated.RoleClaims(); got != nil {
		t.Errorf("RoleClaims() = %+v, want nil", got)
	}
}

// Claims and RoleClaims hand out copies; mutating a returned slice must not
// bleed into the snapshot.
func TestClaimsAreCopies(t *testing.T) {
	p := newPrincipal([]Claim{
		{Type: ClaimName, Value: "ada@example.com"},
		{Type: ClaimEmail, Value: "ada@example.com"},
		{Type: "admin", Value: "true"},
	}, 2)

	p.Claims()[0].Value = "mallory@example.com"
	if p.Name() != "ada@example.com" {
		t.Error("mutating the Claims() copy changed the snapshot")
	}

	p.RoleClaims()[0].Value = "false"
	if p.RoleClaims()[0].Value != "true" {
		t.Error("mutating the RoleClaims() copy changed the snapshot")
	}
}

func TestClaimValueFirstWins(t *testing.T) {
	p := newPrincipal([]Claim{
		{Type: ClaimEmail, Value: "first@example.com"},
		{Type: ClaimEmail, Value: "second@example.com"},
	}, 2)

	if got := p.Email(); got != "first@example.com" {
		t.Errorf("Email() = %q, want the first claim value", got)
	}
}
