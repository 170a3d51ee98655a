// Package api is the typed client for the admin REST contract under
// /api. Every method maps to exactly one endpoint; screen-level
// behavior (loading flags, notifications, retries) lives in the
// stores, not here.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/OsuohaNnamdi/warelink-admin/internal/session"
)

// Responses larger than this are truncated; the admin payloads are
// small and anything bigger indicates a misbehaving backend.
const maxResponseBytes = 8 << 20

// Config holds the non-dependency configuration for a Client.
type Config struct {
	// BaseURL is the API root including the /api prefix,
	// e.g. https://shop.example.com/api.
	BaseURL string
	// HTTPClient overrides the default client (30s timeout). Its
	// transport is wrapped with otel instrumentation either way.
	HTTPClient *http.Client
	// TracerProvider and MeterProvider instrument outgoing requests.
	// Nil providers fall back to the otel globals.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Client issues requests against the admin REST backend. The session
// token is read from the request context on every call, so one Client
// serves all signed-in sessions.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient validates the config and builds a Client with an
// instrumented transport.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "parse base URL")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}

	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	var opts []otelhttp.Option
	if cfg.TracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(cfg.TracerProvider))
	}
	if cfg.MeterProvider != nil {
		opts = append(opts, otelhttp.WithMeterProvider(cfg.MeterProvider))
	}

	// Copy so the instrumented transport does not leak into a client
	// the caller shares.
	instrumented := *hc
	instrumented.Transport = otelhttp.NewTransport(base, opts...)

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &instrumented,
	}, nil
}

// newRequest builds a request for path (which must start with "/" and
// keep the backend's trailing slash), attaching the request id, the
// session token when present, and standard headers.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	req.Header.Set("X-Request-ID", uuid.New().String())
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := session.Token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

// do executes the request and returns the response body. Non-2xx
// responses become *StatusError (or ErrNotFound for 404).
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError(resp.StatusCode, data)
	}
	return data, nil
}
