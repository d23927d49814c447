// Package ports declares the interfaces the SDK expects its collaborators
// to satisfy. The httpclient package provides the default implementation;
// tests and callers may inject their own.
package ports

import "context"

// Response is a normalized HTTP response: the status code plus the decoded
// JSON body. A body that was empty or not a JSON object decodes to nil.
type Response struct {
	StatusCode int
	Body       map[string]any
}

// Transport executes a single HTTP exchange against the payment API.
type Transport interface {
	Get(ctx context.Context, uri string, headers map[string]string) (*Response, error)
	Post(ctx context.Context, uri string, body map[string]any, headers map[string]string) (*Response, error)
}
