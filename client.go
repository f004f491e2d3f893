package eventsource

import (
	"context"
	"net/http"
)

// Client connects to SSE endpoints and returns validated event streams.
// The zero-config client works out of the box:
//
//	client, _ := eventsource.NewClient(eventsource.Config{})
//	stream, err := client.Connect(ctx, "https://api.example.com/events")
type Client struct {
	httpClient *http.Client
	config     Config
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. The client should not
// carry a global timeout: SSE streams are long-lived and cancellation is
// driven by the request context.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new SSE client with the given configuration.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{config: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		// Transport-only client: no global timeout, the context cancels.
		transport := http.DefaultTransport.(*http.Transport).Clone()
		c.httpClient = &http.Client{Transport: transport}
	}
	return c, nil
}

// Connect issues a GET request to url and returns the validated event
// stream. Canceling ctx aborts the request and ends the stream.
func (c *Client) Connect(ctx context.Context, url string) (*Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewTransportError(err)
	}

	req.Header.Set("Accept", mimeEventStream)
	req.Header.Set("Cache-Control", "no-cache")
	if c.config.LastEventID != "" {
		req.Header.Set("Last-Event-ID", c.config.LastEventID)
	}
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewTransportError(err)
	}

	return EventsConfig(resp, c.config)
}
