// Package api provides the typed client for the remote back-office API.
//
// All persistence, authentication and domain validation live behind this
// API; the client only shapes requests and decodes typed payloads or
// structured errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ogiraldo/inkflow/internal/common"
)

// Config holds back-office API configuration.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: api base URL is required", common.ErrMissingConfig)
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("%w: invalid api base URL: %v", common.ErrInvalidConfig, err)
	}
	if c.AccessToken == "" {
		return fmt.Errorf("%w: api access token is required", common.ErrMissingConfig)
	}
	return nil
}

// Client talks to the back-office API over HTTP.
type Client struct {
	httpClient  *http.Client
	logger      *slog.Logger
	baseURL     string
	accessToken string
	retryOpts   common.RetryOptions
}

// NewClient creates a new API client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		logger:      slog.Default().With("component", "api"),
		retryOpts: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 1 * time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
	}, nil
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Rate-limited requests are retried with backoff; every other
// failure surfaces immediately as a RequestError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = encoded
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return common.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return &common.RetryableError{Err: fmt.Errorf("failed to build request: %w", err), Retryable: false}
		}
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		c.logger.Debug("Calling back-office API", "method", method, "path", path)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Transport failures carry the generic detail so callers can
			// substitute a friendlier message.
			return &common.RetryableError{
				Err:       &RequestError{Detail: NetworkErrorDetail},
				Retryable: false,
			}
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusTooManyRequests {
			c.logger.Warn("Rate limit hit, will retry", "path", path)
			return &common.RetryableError{
				Err:       errors.Join(common.ErrRateLimit, decodeError(resp)),
				Retryable: true,
			}
		}

		if resp.StatusCode >= http.StatusBadRequest {
			return &common.RetryableError{Err: decodeError(resp), Retryable: false}
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return &common.RetryableError{
					Err:       fmt.Errorf("failed to decode response: %w", err),
					Retryable: false,
				}
			}
		}

		return nil
	}, c.retryOpts)
}

// decodeError turns a non-2xx response into a RequestError, falling back to
// the HTTP status text when the body is not the expected structure.
func decodeError(resp *http.Response) error {
	reqErr := &RequestError{}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, reqErr)
	}

	if reqErr.Status == 0 {
		reqErr.Status = resp.StatusCode
	}
	if reqErr.Detail == "" {
		reqErr.Detail = http.StatusText(resp.StatusCode)
	}

	return reqErr
}
