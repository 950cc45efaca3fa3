// Package httpclient is the rate-limited, retrying JSON client shared by
// the remote collaborators.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/vvka-141/sfdelta/internal/retry"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// maxErrorBody bounds how much of a failed response is kept for the error.
const maxErrorBody = 512

// Config configures a Client. Zero fields take defaults.
type Config struct {
	Timeout    time.Duration
	MaxRetries int
	RateLimit  float64 // requests per second
	RateBurst  int
	UserAgent  string
	Transport  http.RoundTripper

	// Backoff overrides the retry strategy built from MaxRetries.
	Backoff sfdelta.BackoffStrategy
}

// Client issues GET requests and decodes JSON bodies.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	executor  *retry.Executor
	userAgent string
}

// New creates a Client.
func New(cfg Config, logger sfdelta.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = sfdelta.DefaultHTTPTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = sfdelta.DefaultRetryMaxAttempts
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 5
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = 2
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "sfdelta"
	}
	backoff := cfg.Backoff
	if backoff == nil {
		backoff = retry.NewExponentialBackoff(cfg.MaxRetries)
	}

	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		executor:  retry.NewExecutor(retry.NewHTTPErrorClassifier(), backoff).WithLogger(logger),
		userAgent: cfg.UserAgent,
	}
}

// GetJSON fetches url and decodes the JSON response into target.
// Transient failures are retried; a non-2xx response is a *retry.StatusError.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, target any) error {
	return c.executor.Execute(ctx, func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		return c.get(ctx, url, headers, target)
	})
}

func (c *Client) get(ctx context.Context, url string, headers map[string]string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &retry.StatusError{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}
