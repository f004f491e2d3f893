package eventsource

import (
	"context"
	"io"
	"sync"

	"github.com/kbukum/gokit/component"
	"github.com/kbukum/gokit/logger"
)

// Handler receives events pulled from a subscription.
type Handler func(ctx context.Context, event *Event)

// SubscriberConfig configures a Subscriber.
type SubscriberConfig struct {
	// Name identifies the component. Defaults to "eventsource".
	Name string `yaml:"name" mapstructure:"name"`
	// URL is the SSE endpoint to subscribe to.
	URL string `yaml:"url" mapstructure:"url"`
	// Client configures the underlying connection and decoding.
	Client Config `yaml:"client" mapstructure:"client"`
}

// Subscriber owns one long-lived SSE subscription with lifecycle
// management. Use it when the subscription is part of a managed
// application (e.g., with bootstrap.Start/Stop).
//
// Events are pulled on a single goroutine and dispatched to the handler in
// arrival order. The subscriber does not reconnect: when the stream ends
// or fails it goes unhealthy and stays stopped.
type Subscriber struct {
	config  SubscriberConfig
	handler Handler
	opts    []Option

	mu      sync.Mutex
	stream  *Stream
	cancel  context.CancelFunc
	done    chan struct{}
	lastErr error
}

// compile-time assertions
var _ component.Component = (*Subscriber)(nil)
var _ component.Describable = (*Subscriber)(nil)

// NewSubscriber creates a subscriber that dispatches each event to handler.
func NewSubscriber(cfg SubscriberConfig, handler Handler, opts ...Option) *Subscriber {
	return &Subscriber{config: cfg, handler: handler, opts: opts}
}

// Name returns the component name.
func (s *Subscriber) Name() string {
	if s.config.Name != "" {
		return s.config.Name
	}
	return "eventsource"
}

// Start connects to the endpoint and begins dispatching events. The
// connection is established eagerly so a validation failure fails Start.
func (s *Subscriber) Start(ctx context.Context) error {
	client, err := NewClient(s.config.Client, s.opts...)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	stream, err := client.Connect(runCtx, s.config.URL)
	if err != nil {
		cancel()
		return err
	}

	s.mu.Lock()
	s.stream = stream
	s.cancel = cancel
	s.done = make(chan struct{})
	s.lastErr = nil
	s.mu.Unlock()

	go s.run(runCtx, stream)
	return nil
}

// run pulls events until the stream ends, fails, or the context is
// canceled.
func (s *Subscriber) run(ctx context.Context, stream *Stream) {
	defer close(s.done)

	for {
		event, err := stream.Next()
		if err != nil {
			if err != io.EOF && ctx.Err() == nil {
				s.mu.Lock()
				s.lastErr = err
				s.mu.Unlock()
				logger.Warn("[eventsource] subscription failed", map[string]interface{}{
					"component": s.Name(),
					"url":       s.config.URL,
					"error":     err.Error(),
				})
			}
			return
		}
		s.handler(ctx, event)
	}
}

// Stop cancels the subscription and waits for the dispatch loop to drain.
// The stream is single-consumer, so it is closed only after the loop has
// exited; canceling the context is what aborts an in-flight body read.
func (s *Subscriber) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, stream, done := s.cancel, s.stream, s.done
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return stream.Close()
}

// Health reports healthy while the subscription is live.
func (s *Subscriber) Health(_ context.Context) component.Health {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := component.StatusHealthy
	message := ""
	if s.done == nil {
		status = component.StatusUnhealthy
		message = "not started"
	} else {
		select {
		case <-s.done:
			status = component.StatusUnhealthy
			message = "subscription ended"
			if s.lastErr != nil {
				message = s.lastErr.Error()
			}
		default:
		}
	}

	return component.Health{
		Name:    s.Name(),
		Status:  status,
		Message: message,
	}
}

// Describe returns component description for the bootstrap summary.
func (s *Subscriber) Describe() component.Description {
	return component.Description{
		Name:    s.Name(),
		Type:    "sse-subscriber",
		Details: s.config.URL,
	}
}
