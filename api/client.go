// Package api implements the authenticated client and the per-operation
// facades for the Camoo Payment service.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"

	"github.com/camoo/payment-api/domain"
	"github.com/camoo/payment-api/httpclient"
	"github.com/camoo/payment-api/internal/buildinfo"
	"github.com/camoo/payment-api/ports"
)

const (
	baseURL           = "https://api.camoo.cm/%s/payment"
	defaultAPIVersion = "v1"

	httpOK = 200
)

// Client signs requests and normalizes responses. A zero transport is
// replaced lazily with the default httpclient transport on first use; the
// same instance is then reused for the client's lifetime.
type Client struct {
	apiKey    string
	apiSecret string
	version   string
	debug     bool
	logger    *slog.Logger

	transportOnce sync.Once
	transport     ports.Transport
}

type ClientOption func(*Client)

// WithTransport injects a custom transport instead of the lazy default.
func WithTransport(t ports.Transport) ClientOption {
	return func(c *Client) { c.transport = t }
}

// WithDebug toggles the X-Api-Debug header and verbose logging on the
// default transport.
func WithDebug(debug bool) ClientOption {
	return func(c *Client) { c.debug = debug }
}

// WithVersion overrides the API version segment (default "v1").
func WithVersion(version string) ClientOption {
	return func(c *Client) {
		if version != "" {
			c.version = version
		}
	}
}

// WithLogger routes the default transport's logging to l.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

func NewClient(apiKey, apiSecret string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		version:   defaultAPIVersion,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get sends a GET request to the endpoint, appending the URL-encoded query
// when non-empty.
func (c *Client) Get(ctx context.Context, endpoint Endpoint, query map[string]string) (*ports.Response, error) {
	return c.getTransport().Get(ctx, c.buildURI(endpoint, query), c.headers())
}

// Post sends a POST request with body as the JSON payload. No query string
// is ever attached to POST requests.
func (c *Client) Post(ctx context.Context, endpoint Endpoint, body map[string]any) (*ports.Response, error) {
	return c.getTransport().Post(ctx, c.buildURI(endpoint, nil), body, c.headers())
}

// HandleResponse returns the decoded body for a 200 response. Any other
// status becomes an APIError carrying the server message, or "Unknown
// error" when the body has none.
func (c *Client) HandleResponse(resp *ports.Response) (map[string]any, error) {
	if resp.StatusCode != httpOK {
		message := "Unknown error"
		if m, ok := resp.Body["message"].(string); ok && m != "" {
			message = m
		}
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Message: message}
	}
	return resp.Body, nil
}

func (c *Client) buildURI(endpoint Endpoint, query map[string]string) string {
	uri := fmt.Sprintf(baseURL, c.version) + endpoint.Path()
	if len(query) == 0 {
		return uri
	}
	values := url.Values{}
	for k, v := range query {
		values.Set(k, v)
	}
	return uri + "?" + values.Encode()
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"X-Api-Key":     c.apiKey,
		"X-Api-Secret":  c.apiSecret,
		"X-Api-Version": c.version,
		"X-Api-Debug":   strconv.FormatBool(c.debug),
		"X-Go-Version":  buildinfo.Runtime(),
	}
}

func (c *Client) getTransport() ports.Transport {
	c.transportOnce.Do(func() {
		if c.transport != nil {
			return
		}
		c.transport = httpclient.New(httpclient.DefaultConfig(),
			httpclient.WithDebug(c.debug),
			httpclient.WithLogger(c.logger),
		)
	})
	return c.transport
}
