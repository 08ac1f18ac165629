// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"identikit/cli/internal/errs"
	"identikit/cli/internal/identity"
)

// mockAPI implements identity.API with per-call hooks and call counters.
type mockAPI struct {
	registerFn func(ctx context.Context, email, password string) ([]string, error)
	loginFn    func(ctx context.Context, email, password string) error
	userFn     func(ctx context.Context) (*identity.UserInfo, error)
	rolesFn    func(ctx context.Context) ([]identity.RoleClaim, error)
	logoutFn   func(ctx context.Context) error

	userCalls  int
	rolesCalls int
}

func (m *mockAPI) Register(ctx context.Context, email, password string) ([]string, error) {
	return m.registerFn(ctx, email, password)
}

func (m *mockAPI) Login(ctx context.Context, email, password string) error {
	return m.loginFn(ctx, email, password)
}

func (m *mockAPI) CurrentUser(ctx context.Context) (*identity.UserInfo, error) {
	m.userCalls++
	return m.userFn(ctx)
}

func (m *mockAPI) Roles(ctx context.Context) ([]identity.RoleClaim, error) {
	m.rolesCalls++
	return m.rolesFn(ctx)
}

func (m *mockAPI) Logout(ctx context.Context) error {
	return m.logoutFn(ctx)
}

func (m *mockAPI) Ping(ctx context.Context) error { return nil }

// happyAPI returns a mock where every operation succeeds for ada@example.com.
func happyAPI() *mockAPI {
	return &mockAPI{
		registerFn: func(context.Context, string, string) ([]string, error) { return nil, nil },
		loginFn:    func(context.Context, string, string) error { return nil },
		userFn: func(context.Context) (*identity.UserInfo, error) {
			return &identity.UserInfo{Email: "ada@example.com"}, nil
		},
		rolesFn:  func(context.Context) ([]identity.RoleClaim, error) { return nil, nil },
		logoutFn: func(context.Context) error { return nil },
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc := NewService(happyAPI())

	res, err := svc.Register(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !res.Succeeded || len(res.Errors) != 0 {
		t.Errorf("result = %+v, want succeeded with no errors", res)
	}
}

func TestRegisterValidationMessages(t *testing.T) {
	api := happyAPI()
	cause := errs.Status(400, "registration rejected")
	api.registerFn = func(context.Context, string, string) ([]string, error) {
		return []string{"Passwords must be at least 6 characters.", "Passwords must have at least one digit."}, cause
	}
	svc := NewService(api)

	res, err := svc.Register(context.Background(), "ada@example.com", "pw")
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want the status cause", err)
	}
	if res.Succeeded {
		t.Error("result succeeded, want failure")
	}
	want := []string{"Passwords must be at least 6 characters.", "Passwords must have at least one digit."}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("errors = %v, want %v (server order)", res.Errors, want)
	}
}

func TestRegisterFallbackMessage(t *testing.T) {
	api := happyAPI()
	api.registerFn = func(context.Context, string, string) ([]string, error) {
		return nil, errs.New(errs.Transport, "identity server unreachable")
	}
	svc := NewService(api)

	res, _ := svc.Register(context.Background(), "ada@example.com", "pw")
	if res.Succeeded {
		t.Error("result succeeded, want failure")
	}
	if len(res.Errors) != 1 || res.Errors[0] != RegisterFallbackMessage {
		t.Errorf("errors = %v, want the single fallback message", res.Errors)
	}
}

func TestLoginSuccessNotifiesOnce(t *testing.T) {
	svc := NewService(happyAPI())

	var notified []*Principal
	svc.Subscribe(func(p *Principal) { notified = append(notified, p) })

	res, err := svc.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !res.Succeeded {
		t.Error("result failed, want success")
	}
	if len(notified) != 1 {
		t.Fatalf("subscriber called %d times, want 1", len(notified))
	}
	if !notified[0].IsAuthenticated() {
		t.Error("notified principal is unauthenticated, want authenticated")
	}
	if notified[0].Email() != "ada@example.com" {
		t.Errorf("email = %q, want ada@example.com", notified[0].Email())
	}
}

func TestLoginFailure(t *testing.T) {
	api := happyAPI()
	cause := errs.Status(401, "login rejected")
	api.loginFn = func(context.Context, string, string) error { return cause }
	svc := NewService(api)

	notifications := 0
	svc.Subscribe(func(*Principal) { notifications++ })

	res, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want the status cause", err)
	}
	if res.Succeeded {
		t.Error("result succeeded, want failure")
	}
	if len(res.Errors) != 1 || res.Errors[0] != InvalidCredentialsMessage {
		t.Errorf("errors = %v, want the invalid-credentials message", res.Errors)
	}
	if notifications != 0 {
		t.Errorf("subscriber called %d times on failed login, want 0", notifications)
	}
}

func TestFetchStateBuildsClaims(t *testing.T) {
	api := happyAPI()
	api.userFn = func(context.Context) (*identity.UserInfo, error) {
		return &identity.UserInfo{
			Email: "ada@example.com",
			Claims: []identity.UserClaim{
				{Key: "email", Value: "shadowed@example.com"}, // duplicate of canonical, dropped
				{Key: "display_name", Value: "Ada"},
			},
		}, nil
	}
	api.rolesFn = func(context.Context) ([]identity.RoleClaim, error) {
		return []identity.RoleClaim{
			{Type: "admin", Value: "true"},
			{Type: "", Value: "ignored"},
			{Type: "ignored", Value: ""},
		}, nil
	}
	svc := NewService(api)

	p, err := svc.FetchState(context.Background())
	if err != nil {
		t.Fatalf("FetchState() error = %v", err)
	}
	if !p.IsAuthenticated() {
		t.Fatal("principal unauthenticated, want authenticated")
	}
	if p.Name() != "ada@example.com" || p.Email() != "ada@example.com" {
		t.Errorf("canonical claims = (%q, %q), want email twice", p.Name(), p.Email())
	}

	wantClaims := []Claim{
		{Type: ClaimName, Value: "ada@example.com"},
		{Type: ClaimEmail, Value: "ada@example.com"},
		{Type: "display_name", Value: "Ada"},
		{Type: "admin", Value: "true"},
	}
	if got := p.Claims(); !reflect.DeepEqual(got, wantClaims) {
		t.Errorf("claims = %+v, want %+v", got, wantClaims)
	}

	wantRoles := []Claim{{Type: "admin", Value: "true"}}
	if got := p.RoleClaims(); !reflect.DeepEqual(got, wantRoles) {
		t.Errorf("role claims = %+v, want %+v", got, wantRoles)
	}

	if svc.Current() != p {
		t.Error("Current() does not return the fetched snapshot")
	}
}

func TestFetchStateCollapsesOnInfoFailure(t *testing.T) {
	api := happyAPI()
	cause := errs.Status(401, "identity server rejected request")
	api.userFn = func(context.Context) (*identity.UserInfo, error) { return nil, cause }
	svc := NewService(api)

	p, err := svc.FetchState(context.Background())
	if p != Unauthenticated {
		t.Error("principal is not the shared Unauthenticated value")
	}
	if p.IsAuthenticated() {
		t.Error("principal claims to be authenticated")
	}
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want the status cause", err)
	}
	if api.rolesCalls != 0 {
		t.Errorf("roles fetched %d times after info failure, want 0", api.rolesCalls)
	}
}

func TestFetchStateCollapsesOnRolesFailure(t *testing.T) {
	api := happyAPI()
	cause := errs.New(errs.Transport, "identity server unreachable")
	api.rolesFn = func(context.Context) ([]identity.RoleClaim, error) { return nil, cause }
	svc := NewService(api)

	p, err := svc.FetchState(context.Background())
	if p != Unauthenticated {
		t.Error("principal is not the shared Unauthenticated value")
	}
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want the transport cause", err)
	}
	if svc.Current() != Unauthenticated {
		t.Error("Current() kept a stale snapshot after collapse")
	}
}

func TestIsAuthenticatedAlwaysRoundTrips(t *testing.T) {
	api := happyAPI()
	svc := NewService(api)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := svc.IsAuthenticated(ctx)
		if err != nil {
			t.Fatalf("IsAuthenticated() error = %v", err)
		}
		if !ok {
			t.Fatal("IsAuthenticated() = false, want true")
		}
	}
	if api.userCalls != 3 {
		t.Errorf("info fetched %d times, want 3 (no caching)", api.userCalls)
	}
}

func TestLogoutNotifiesEvenWhenServerFails(t *testing.T) {
	api := happyAPI()
	cause := errs.New(errs.Transport, "identity server unreachable")
	api.logoutFn = func(context.Context) error { return cause }
	api.userFn = func(context.Context) (*identity.UserInfo, error) {
		return nil, errs.Status(401, "identity server rejected request")
	}
	svc := NewService(api)

	var notified []*Principal
	svc.Subscribe(func(p *Principal) { notified = append(notified, p) })

	err := svc.Logout(context.Background())
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want the logout cause", err)
	}
	if len(notified) != 1 {
		t.Fatalf("subscriber called %d times, want 1", len(notified))
	}
	if notified[0] != Unauthenticated {
		t.Error("notified principal is not Unauthenticated after logout")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	svc := NewService(happyAPI())

	notifications := 0
	cancel := svc.Subscribe(func(*Principal) { notifications++ })
	cancel()
	cancel() // second call is a no-op

	if _, err := svc.Login(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if notifications != 0 {
		t.Errorf("cancelled subscriber called %d times, want 0", notifications)
	}
}
