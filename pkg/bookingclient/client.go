// Package bookingclient is a typed client for the hotel booking API.
// Every entity follows the same shape: a gateway issuing one HTTP
// request per operation, a local cache holding the last-fetched
// snapshot, and a store reconciling gateway results into the cache.
package bookingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

type Client struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken stores the bearer token forwarded verbatim on every request
// until replaced. An empty string clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	return c.httpc.Do(req)
}

// envelope is the API's uniform response wrapper.
type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   *apiError                  `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *envelope) message() string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return ""
}

// Gateway translates one logical CRUD operation into exactly one HTTP
// request. It is stateless; callers reconcile results into a Cache.
type Gateway[T any] struct {
	client  *Client
	path    string // collection path, e.g. "/hotels"
	listKey string // envelope key for the collection, e.g. "hotels"
	itemKey string // envelope key for a single item, e.g. "hotel"
}

func NewGateway[T any](client *Client, path, listKey, itemKey string) *Gateway[T] {
	return &Gateway[T]{client: client, path: path, listKey: listKey, itemKey: itemKey}
}

// List fetches the whole collection. The body is parsed regardless of
// the response status: non-2xx list responses have always been decoded
// as if they succeeded, and callers depend on that, so only transport
// and decode failures surface as *FetchError. An error envelope simply
// yields an empty collection.
func (g *Gateway[T]) List(ctx context.Context) ([]T, error) {
	resp, err := g.client.do(ctx, http.MethodGet, g.path, nil)
	if err != nil {
		return nil, &FetchError{Op: "list " + g.path, Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &FetchError{Op: "list " + g.path, Err: err}
	}

	raw, ok := env.Data[g.listKey]
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &FetchError{Op: "list " + g.path, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get fetches one item; a non-OK status is a *NotFoundError.
func (g *Gateway[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	path := g.path + "/" + id

	resp, err := g.client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return zero, err
	}
	if !ok2xx(resp.StatusCode) {
		return zero, &NotFoundError{Path: path, Status: resp.StatusCode, Message: env.message()}
	}
	return g.item(env)
}

// Create posts the payload; the server-returned value is authoritative.
func (g *Gateway[T]) Create(ctx context.Context, payload T) (T, error) {
	var zero T

	resp, err := g.client.do(ctx, http.MethodPost, g.path, payload)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return zero, err
	}
	if !ok2xx(resp.StatusCode) {
		return zero, &ValidationError{Status: resp.StatusCode, Message: env.message()}
	}
	return g.item(env)
}

// Update puts the payload keyed by id; same failure mode as Create.
func (g *Gateway[T]) Update(ctx context.Context, id string, payload T) (T, error) {
	var zero T
	path := g.path + "/" + id

	resp, err := g.client.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return zero, err
	}
	if !ok2xx(resp.StatusCode) {
		return zero, &ValidationError{Status: resp.StatusCode, Message: env.message()}
	}
	return g.item(env)
}

// Delete issues the request and treats any completed round trip as
// success, whatever the response says. The id comes back for local
// removal.
func (g *Gateway[T]) Delete(ctx context.Context, id string) (string, error) {
	resp, err := g.client.do(ctx, http.MethodDelete, g.path+"/"+id, nil)
	if err != nil {
		return "", err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return id, nil
}

func (g *Gateway[T]) item(env *envelope) (T, error) {
	var zero T
	raw, ok := env.Data[g.itemKey]
	if !ok {
		return zero, fmt.Errorf("response missing %q", g.itemKey)
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return zero, err
	}
	return item, nil
}

func decodeEnvelope(r io.Reader) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &env, nil
}

func ok2xx(status int) bool {
	return status >= 200 && status < 300
}
