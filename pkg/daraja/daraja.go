// Package daraja is a small client for Safaricom's Daraja API: OAuth
// token fetching and STK push password generation. Only the pieces the
// payment flow needs are implemented.
package daraja

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"

	tokenPath = "/oauth/v1/generate?grant_type=client_credentials"

	// timestampLayout is the yyyyMMddHHmmss format Daraja requires in
	// the STK password.
	timestampLayout = "20060102150405"
)

var (
	ErrMissingCredentials = errors.New("daraja: consumer key and secret are required")
	ErrMissingShortCode   = errors.New("daraja: shortcode and passkey are required")
)

type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	Sandbox        bool
}

type Client struct {
	cfg     Config
	baseURL string
	httpc   *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithBaseURL overrides the Safaricom host, for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: productionBaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	if cfg.Sandbox {
		c.baseURL = sandboxBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// AccessToken requests an OAuth token using the consumer key and secret
// as HTTP Basic credentials. Credentials are checked before any network
// traffic happens.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.cfg.ConsumerKey == "" || c.cfg.ConsumerSecret == "" {
		return "", ErrMissingCredentials
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tokenPath, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("daraja: token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("daraja: token request returned status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("daraja: decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("daraja: empty access token in response")
	}
	return tok.AccessToken, nil
}

// Password derives the STK push password for the configured shortcode
// at time t.
func (c *Client) Password(t time.Time) (string, error) {
	return GeneratePassword(c.cfg.ShortCode, c.cfg.Passkey, t)
}

// GeneratePassword encodes shortcode+passkey+timestamp in base64, the
// exact STK password recipe Daraja documents. Missing inputs fail
// before anything is encoded.
func GeneratePassword(shortCode, passkey string, t time.Time) (string, error) {
	if shortCode == "" || passkey == "" {
		return "", ErrMissingShortCode
	}
	raw := shortCode + passkey + t.Format(timestampLayout)
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}
