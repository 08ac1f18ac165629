package identity

import (
	"context"
	"io"
	"net/url"

	"identikit/cli/internal/errs"
)

// Login posts credentials to the login endpoint with useCookies=true so the
// server issues a session cookie instead of a bearer token. The cookie lands
// in the client's jar; callers observe only success or a typed failure.
func (h *HTTP) Login(ctx context.Context, email, password string) error {
	u := h.url(h.endpoints.Login) + "?" + url.Values{"useCookies": {"true"}}.Encode()

	resp, err := h.postJSON(ctx, u, credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return errs.Status(resp.StatusCode, "login rejected")
	}
	return nil
}

// Logout posts an empty JSON body to the logout endpoint. The identity API
// requires a JSON content type even though the operation carries no data.
func (h *HTTP) Logout(ctx context.Context) error {
	resp, err := h.postJSON(ctx, h.url(h.endpoints.Logout), struct{}{})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !success(resp.StatusCode) {
		return errs.Status(resp.StatusCode, "logout rejected")
	}
	return nil
}
