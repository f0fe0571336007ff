// Package client is a thin HTTP client for the storefront API. Reads fall
// back to the embedded demo dataset when the API cannot be reached, and say
// so in Result.Fallback; writes never fall back.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"go.uber.org/zap"
)

// Result is a decoded API payload.
type Result[T any] struct {
	Data     T
	Meta     *models.Pagination
	Fallback bool
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	fallback bool
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithoutFallback makes reads fail instead of serving demo data.
func WithoutFallback() Option {
	return func(c *Client) { c.fallback = false }
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8081/api/v1".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   zap.NewNop(),
		fallback: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope matches models.ApiResponse with a typed payload.
type envelope[T any] struct {
	Message string             `json:"message"`
	Data    T                  `json:"data"`
	Error   bool               `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (Result[T], error) {
	var out Result[T]

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return out, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return out, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return out, &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return out, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 300 || env.Error {
		return out, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	out.Data = env.Data
	out.Meta = env.Meta
	return out, nil
}

// shouldFallback is true for failures that say nothing about the request
// itself: transport errors and 5xx answers. Cancellation is not one of them.
func (c *Client) shouldFallback(ctx context.Context, err error) bool {
	if !c.fallback || ctx.Err() != nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return true
}

func (c *Client) logFallback(path string, err error) {
	c.logger.Warn("⚠️ API unavailable, serving demo data", zap.String("path", path), zap.Error(err))
}

func pageQuery(v url.Values, page, limit int) url.Values {
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}
