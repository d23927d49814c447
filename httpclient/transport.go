package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/camoo/payment-api/ports"
)

// Transport is the default ports.Transport. It sends JSON requests, reads
// bodies up to a configured bound and decodes them into a generic mapping.
type Transport struct {
	client       *http.Client
	maxBodyBytes int64
	logger       *slog.Logger
	debug        bool
}

type Option func(*Transport)

// WithLogger routes debug logging to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Transport) { t.logger = l }
}

// WithDebug enables request/response logging at debug level.
func WithDebug(debug bool) Option {
	return func(t *Transport) { t.debug = debug }
}

// WithHTTPClient swaps the underlying *http.Client, keeping the decode and
// logging behavior.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) { t.client = c }
}

func New(cfg Config, opts ...Option) *Transport {
	t := &Transport{
		client:       newHTTPClient(cfg),
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ ports.Transport = (*Transport)(nil)

func (t *Transport) Get(ctx context.Context, uri string, headers map[string]string) (*ports.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: build request: %w", err)
	}
	applyHeaders(req, headers)
	return t.do(req)
}

func (t *Transport) Post(ctx context.Context, uri string, body map[string]any, headers map[string]string) (*ports.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("httpclient: build request: %w", err)
	}
	applyHeaders(req, headers)
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return t.do(req)
}

func (t *Transport) do(req *http.Request) (*ports.Response, error) {
	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	raw, truncated, err := readBounded(resp.Body, t.maxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if t.debug {
		t.logger.Debug("httpclient.exchange",
			"method", req.Method,
			"url", req.URL.String(),
			"status", resp.StatusCode,
			"latency_ms", time.Since(start).Milliseconds(),
			"truncated", truncated,
		)
	}

	var body map[string]any
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("httpclient: decode body: %w", err)
		}
	}

	return &ports.Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func applyHeaders(req *http.Request, headers map[string]string) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}
