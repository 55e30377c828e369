package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Hemachandram324/ecommerce-project/internal/session"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
// The base client has already cleared the persisted session by the time a
// caller sees this; the caller's only job is to send the user to login.
var ErrUnauthorized = errors.New("session expired or not authorized")

// APIError is an expected failure reported by the backend (4xx/5xx with an
// {"error": "..."} body).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: %s (status %d)", e.Message, e.Status)
}

// Client is the single outbound HTTP client every typed client goes through.
// It centralizes the base address, attaches the bearer token when a session
// exists, and applies the 401 policy in one place instead of per page.
type Client struct {
	BaseURL  *url.URL
	HTTP     *http.Client
	Sessions session.Store
}

func NewClient(baseURL string, httpClient *http.Client, sessions session.Store) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", baseURL, err)
	}
	return &Client{BaseURL: u, HTTP: httpClient, Sessions: sessions}, nil
}

// Do issues a request against the backend. path is appended to the base
// URL's path. A 401 response clears the session and yields ErrUnauthorized.
func (c *Client) Do(ctx context.Context, method, path, rawQuery string, body io.Reader, headers http.Header) (*http.Response, error) {
	u := c.BaseURL.JoinPath(path)
	u.RawQuery = rawQuery

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	for k, vv := range headers {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	if s, err := c.Sessions.Load(); err == nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		// Token invalidation is discovered reactively, here and only here.
		if cerr := c.Sessions.Clear(); cerr != nil {
			return nil, fmt.Errorf("clear session after 401: %w", cerr)
		}
		return nil, ErrUnauthorized
	}

	return resp, nil
}

// DoJSON sends an optional JSON body and decodes a JSON response into out
// (skipped when out is nil). Non-2xx responses become *APIError.
func (c *Client) DoJSON(ctx context.Context, method, path, rawQuery string, in, out any, headers http.Header) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
		if headers == nil {
			headers = http.Header{}
		}
		headers.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(ctx, method, path, rawQuery, body, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	return nil
}

func jsonDecode(r io.Reader, out any) error {
	return json.NewDecoder(r).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &payload) == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else {
			apiErr.Message = payload.Message
		}
	}
	return apiErr
}
