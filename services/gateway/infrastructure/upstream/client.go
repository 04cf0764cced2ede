// Package upstream is the gateway's HTTP client for the server tier.
package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/shareit/pkg/httpx"
)

// maxResponseBytes caps how much of an upstream body is relayed.
const maxResponseBytes = 10 << 20

// Request is one call forwarded to the server.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	UserID int64 // zero omits the sharer header
	Body   []byte
}

// Response is the server's reply, relayed to the caller unchanged.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Client forwards requests to SERVER_URL. Its transport propagates the
// caller's trace context.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient parses baseURL and returns a client whose calls time out after timeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("upstream: parse %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("upstream: %q is not an absolute http(s) URL", baseURL)
	}
	return &Client{
		base: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// Do sends req and reads the full response. An error means the server could
// not be reached or the body could not be read; any HTTP status is a success.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	target := *c.base
	target.Path = c.base.Path + req.Path
	target.RawQuery = req.Query.Encode()

	var body io.Reader = http.NoBody
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("upstream: build %s %s: %w", req.Method, req.Path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if len(req.Body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.UserID > 0 {
		httpReq.Header.Set(httpx.SharerHeader, strconv.FormatInt(req.UserID, 10))
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("upstream: %s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("upstream: read %s %s: %w", req.Method, req.Path, err)
	}
	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        payload,
	}, nil
}

// Ping reports whether the server's /health endpoint answers 200.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/health"})
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("upstream: health returned %d", resp.Status)
	}
	return nil
}
