// Package client talks to a running lovetype HTTP server.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/hejijunhao/lovetype/internal/model"
)

// Client calls the lovetype API with retries on 429 and 5xx responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

// APIError is a non-2xx response. Detail is the server's "detail" value
// when the body carries one, otherwise the first 512 bytes of the body.
type APIError struct {
	StatusCode int
	Detail     string
	retryAfter string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

// Option configures Client behavior.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets how many times a 429 or 5xx response is retried.
func WithRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithBackoff sets the first retry delay. Later retries double it.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.backoff = d
	}
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		maxRetries: 3,
		backoff:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type scoreRequest struct {
	TypeA string `json:"typeA"`
	TypeB string `json:"typeB"`
}

// Classify posts one ordered pair to /score.
func (c *Client) Classify(ctx context.Context, typeA, typeB string) (model.Result, error) {
	var res model.Result
	err := c.do(ctx, http.MethodPost, "/score", scoreRequest{TypeA: typeA, TypeB: typeB}, &res)
	return res, err
}

// Types fetches the known type names from /types.
func (c *Client) Types(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.do(ctx, http.MethodGet, "/types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// Health fetches /health. The map includes the "status" key.
func (c *Client) Health(ctx context.Context) (map[string]string, error) {
	var st map[string]string
	if err := c.do(ctx, http.MethodGet, "/health", nil, &st); err != nil {
		return nil, err
	}
	return st, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
	}

	var lastErr *APIError
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoffDelay(attempt, lastErr)
			slog.Debug("retrying lovetype request", "path", path, "attempt", attempt, "status", lastErr.StatusCode, "wait", wait)
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return err
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if err := json.Unmarshal(respBody, dest); err != nil {
				return fmt.Errorf("decode %s response: %w", path, err)
			}
			return nil
		}

		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: detail(respBody)}
		if resp.StatusCode == http.StatusTooManyRequests {
			apiErr.retryAfter = resp.Header.Get("Retry-After")
			lastErr = apiErr
			continue
		}
		if resp.StatusCode >= 500 {
			lastErr = apiErr
			continue
		}
		return apiErr
	}
	return lastErr
}

// detail extracts the "detail" member of an error body. Non-string details
// (validation lists) are returned as compact JSON.
func detail(body []byte) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Detail) > 0 {
		var s string
		if err := json.Unmarshal(env.Detail, &s); err == nil {
			return s
		}
		return string(env.Detail)
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return string(body)
}

// backoffDelay honors Retry-After on 429s and otherwise doubles the base
// delay per attempt.
func (c *Client) backoffDelay(attempt int, lastErr *APIError) time.Duration {
	if lastErr != nil && lastErr.StatusCode == http.StatusTooManyRequests && lastErr.retryAfter != "" {
		if secs, err := strconv.Atoi(lastErr.retryAfter); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return c.backoff << (attempt - 1)
}
