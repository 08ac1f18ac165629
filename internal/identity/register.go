package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"identikit/cli/internal/errs"
)

// Register posts credentials to the register endpoint. A 2xx returns
// (nil, nil). A rejection returns the flattened server validation messages
// together with the status error; a rejection whose body yields no messages
// returns only the typed error.
func (h *HTTP) Register(ctx context.Context, email, password string) ([]string, error) {
	resp, err := h.postJSON(ctx, h.url(h.endpoints.Register), credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if success(resp.StatusCode) {
		return nil, nil
	}

	body, _ := io.ReadAll(resp.Body)
	return flattenValidationErrors(body), errs.Status(resp.StatusCode, "registration rejected")
}

// flattenValidationErrors extracts human-readable messages from a problem
// body of the shape {"errors": {field: "msg" | ["msg", ...], ...}}.
//
// The errors object is walked as a token stream rather than decoded into a
// map: Go map iteration would scramble the order the server sent the fields
// in, and callers present the messages as an ordered list.
func flattenValidationErrors(body []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var out []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return out
		}
		key, _ := keyTok.(string)
		if key != "errors" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return out
			}
			continue
		}

		tok, err := dec.Token()
		if err != nil {
			return out
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return out
		}
		for dec.More() {
			// field name; the messages carry the field context already
			if _, err := dec.Token(); err != nil {
				return out
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return out
			}
			out = append(out, messageStrings(raw)...)
		}
		// closing brace of the errors object
		if _, err := dec.Token(); err != nil {
			return out
		}
	}
	return out
}

// messageStrings interprets one errors-map value: a bare string or an array
// whose string elements are kept in order. Anything else contributes nothing.
func messageStrings(raw json.RawMessage) []string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []string{s}
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	var out []string
	for _, v := range list {
		if msg, ok := v.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
