package justwatch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://apis.justwatch.com/content"
	defaultLocale  = "en_US"
)

// Client is a JustWatch content API client. Each call performs exactly one
// HTTP round trip; there is no caching or retrying.
type Client struct {
	baseURL    string
	locale     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output and skipped elements.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "justwatch")
	}
}

// WithLocale sets the locale used in endpoint paths (default "en_US").
func WithLocale(locale string) Option {
	return func(c *Client) {
		c.locale = locale
	}
}

// New creates a new JustWatch client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		locale:     defaultLocale,
		httpClient: &http.Client{},
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Locale returns the locale used in endpoint paths.
func (c *Client) Locale() string {
	return c.locale
}

// do performs a single request against endpoint and returns the raw JSON body.
// GET sends params as a query string, POST as a JSON body.
func (c *Client) do(ctx context.Context, method, endpoint string, params Params) (json.RawMessage, error) {
	start := time.Now()
	reqURL := c.baseURL + endpoint

	var body io.Reader
	switch method {
	case http.MethodGet:
		if q := params.Encode(); q != "" {
			reqURL += "?" + q
		}
	case http.MethodPost:
		payload, err := json.Marshal(params)
		if err != nil {
			return nil, &RequestError{Op: "marshal params", Err: err}
		}
		body = bytes.NewReader(payload)
	default:
		panic("justwatch: unsupported method " + method)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, &RequestError{Op: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Op: "execute request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Op: "read response", Err: err}
	}

	c.log.Debug("request completed",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"bytes", len(data),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// Status codes are not interpreted; any JSON body is a result.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &NoJSONError{Err: err}
	}
	return raw, nil
}

// decodeEach decodes every element on its own, logging and dropping the ones that fail.
func decodeEach[T any](log *slog.Logger, kind string, elems []json.RawMessage) []T {
	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			log.Warn("skipping malformed element", "kind", kind, "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// arrayOf returns the elements of a JSON array, or nil if raw is not an array.
func arrayOf(raw json.RawMessage) ([]json.RawMessage, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	return elems, true
}
