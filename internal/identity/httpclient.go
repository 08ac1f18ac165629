package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"identikit/cli/internal/errs"
	"identikit/cli/internal/transport"
)

// HTTP implements API over the identity server's REST endpoints.
// Every request goes through the credentialed decorator and the client's
// cookie jar, so session cookies and the XHR marker ride along on all five
// operations without per-call wiring.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g. "https://id.example.com")
	baseURL string
	// endpoints contains the URL paths for the identity operations
	endpoints Endpoints
	// client is the underlying HTTP client with jar and decorator configured
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL, endpoints and
// cookie jar. It configures a 10-second timeout for all requests.
func newHTTP(baseURL string, endpoints Endpoints, jar http.CookieJar) *HTTP {
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints.withDefaults(),
		client: &http.Client{
			Timeout:   10 * time.Second,
			Jar:       jar,
			Transport: &transport.Credentialed{},
		},
	}
}

// url joins an endpoint path onto the base URL.
func (h *HTTP) url(path string) string {
	return h.baseURL + "/" + strings.TrimLeft(path, "/")
}

// credentials is the register/login request body.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// postJSON issues a POST with a JSON body. The caller owns the response body.
func (h *HTTP) postJSON(ctx context.Context, url string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(errs.MalformedResponse, "encode request body", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, errs.Wrap(errs.Transport, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.Transport, "identity server unreachable", err)
	}
	return resp, nil
}

// getJSON issues a GET and decodes a 200 response body into out.
func (h *HTTP) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errs.Wrap(errs.Transport, "create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return errs.Wrap(errs.Transport, "identity server unreachable", err)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return errs.Status(resp.StatusCode, "identity server rejected request")
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(errs.MalformedResponse, "decode response body", err)
	}
	return nil
}

// success reports whether code is in the 2xx range.
func success(code int) bool {
	return code >= 200 && code < 300
}

// Ping probes the identity server. Any HTTP response counts as reachable;
// an unauthenticated 401 from the info endpoint is still a healthy server.
func (h *HTTP) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url(h.endpoints.Info), nil)
	if err != nil {
		return errs.Wrap(errs.Transport, "create request", err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return errs.Wrap(errs.Transport, "identity server unreachable", err)
	}
	resp.Body.Close()
	return nil
}
