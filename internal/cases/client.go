package cases

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fetcher retrieves the case list. *Client implements it; tests substitute
// their own.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the case data endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

const (
	defaultEndpoint  = "http://127.0.0.1:8080/get-cases"
	defaultUserAgent = "bureaucrat/0.1"
	requestTimeout   = 5 * time.Second

	// RequestIDHeader carries the per-fetch correlation id.
	RequestIDHeader = "X-Request-ID"
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client for the given endpoint URL.
func NewClient(rawURL string, opts ...Option) (*Client, error) {
	endpoint, err := parseEndpoint(rawURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the normalized endpoint URL.
func (c *Client) Endpoint() string {
	if c == nil {
		return ""
	}
	return c.endpoint.String()
}

// Fetch issues a single GET against the endpoint and decodes the case list.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	requestID := uuid.NewString()
	logger := c.logger.With(zap.String("request_id", requestID), zap.String("endpoint", c.endpoint.String()))
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("case fetch failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("case endpoint returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("api %s returned status %d", c.endpoint.Path, resp.StatusCode)
	}

	records, err := Decode(resp.Body)
	if err != nil {
		logger.Warn("case payload rejected", zap.Error(err))
		return nil, err
	}
	logger.Info("cases fetched",
		zap.Int("count", len(records)),
		zap.Duration("elapsed", time.Since(started)))
	return records, nil
}

func parseEndpoint(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		trimmed = defaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse cases_url %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse cases_url %q: missing host", rawURL)
	}
	u.Fragment = ""
	return u, nil
}
