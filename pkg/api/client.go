package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/avasyliev/booktrack/pkg/logger"
	"github.com/avasyliev/booktrack/pkg/session"
)

// Client is the authenticated gateway to the tracker backend. Domain calls
// carry the stored access token as a bearer header; auth calls go out bare.
// The session store is an explicit dependency, not a global.
type Client struct {
	http     *http.Client
	baseURL  string // domain resources prefix
	authURL  string // auth endpoints prefix
	session  session.Store
	validate *validator.Validate
}

func New(baseURL, authURL string, sess session.Store) *Client {
	return &Client{
		http:     http.DefaultClient,
		baseURL:  baseURL,
		authURL:  authURL,
		session:  sess,
		validate: validator.New(),
	}
}

// checkInput runs boundary validation before any network traffic.
func (c *Client) checkInput(v any) error {
	if err := c.validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

// get issues an authenticated GET against the domain prefix.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, c.baseURL+path, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, c.baseURL+path, body, out, true)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, c.baseURL+path, body, out, true)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+path, nil, nil, true)
}

// postAuth issues an unauthenticated POST against the auth prefix.
func (c *Client) postAuth(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, c.authURL+path, body, out, false)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out any, authed bool) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if authed {
		if token, ok := c.session.AccessToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Nothing came back: connectivity failure, not a server verdict.
		return transportError(err)
	}
	defer resp.Body.Close()

	logger.Log.Debugf("%s %s -> %d", method, rawURL, resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns a rejected response into a classified *Error. Bodies are
// either {"detail": "..."} or per-field maps of message lists; a field may
// also arrive as a single string.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		apiErr.Kind = KindAuthentication
	case http.StatusForbidden:
		apiErr.Kind = KindAuthorization
	default:
		apiErr.Kind = KindServer
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return apiErr
	}
	fields := make(map[string][]string)
	for field, msg := range raw {
		var list []string
		if err := json.Unmarshal(msg, &list); err == nil {
			fields[field] = list
			continue
		}
		var single string
		if err := json.Unmarshal(msg, &single); err == nil {
			fields[field] = []string{single}
		}
	}
	if detail, ok := fields["detail"]; ok && len(detail) > 0 {
		apiErr.Detail = detail[0]
		delete(fields, "detail")
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}
