// Package client is a Go client for the NITG Connect API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL matches a server started with the default PORT.
const DefaultBaseURL = "http://localhost:3000/api"

// Document is a decoded API object. Stored fields are returned as-is.
type Document map[string]interface{}

// ID returns the document id or "" when absent.
func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

// String returns the string field key, or "".
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// APIError is any non-2xx response. Message is the body's "error" field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenStore sets where the token and user are persisted. Defaults to memory.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     NewMemoryTokenStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tokens exposes the client's token store.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

func (c *Client) Auth() *AuthClient {
	return &AuthClient{c: c}
}

func (c *Client) LostFound() *Resource {
	return &Resource{c: c, path: "/lost-found"}
}

func (c *Client) Notices() *Resource {
	return &Resource{c: c, path: "/notices"}
}

func (c *Client) Marketplace() *Resource {
	return &Resource{c: c, path: "/marketplace"}
}

func (c *Client) Users() *Resource {
	return &Resource{c: c, path: "/users"}
}

func (c *Client) Clubs() *Resource {
	return &Resource{c: c, path: "/clubs"}
}

func (c *Client) Birthdays() *Resource {
	return &Resource{c: c, path: "/birthdays"}
}

func (c *Client) Uploads() *UploadClient {
	return &UploadClient{c: c}
}

func (c *Client) Resource(name string) *Resource {
	return &Resource{c: c, path: "/" + strings.Trim(name, "/")}
}

// do sends a JSON request and decodes a JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, out)
}

// send attaches the bearer token, executes req and maps the response.
func (c *Client) send(req *http.Request, out interface{}) error {
	if token, _, err := c.tokens.Load(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	msg := "Request failed"
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &APIError{Status: status, Message: msg}
}
