package eventsource

import (
	"io"
	"mime"
	"net/http"

	"github.com/kbukum/gokit/logger"
)

// Stream is a lazy, pull-based sequence of server-sent events read from a
// response body. Nothing is read from the body until Next is called, so a
// slow consumer naturally throttles the underlying connection.
//
// A Stream is single-consumer and single-pass: it is not safe for
// concurrent use and cannot be restarted once it ends.
type Stream struct {
	decoder *Decoder
	body    io.ReadCloser
	err     error
}

// Events converts an HTTP response into a stream of server-sent events
// using default configuration.
//
// The response is validated eagerly: the status must be 200 and the
// Content-Type must be "text/event-stream". On validation failure a typed
// *Error is returned before any body byte is read, and the body is closed.
// On success the Stream takes ownership of the body; the caller must close
// the stream when done.
func Events(resp *http.Response) (*Stream, error) {
	return EventsConfig(resp, Config{})
}

// EventsConfig converts an HTTP response into a stream of server-sent
// events with the given configuration.
func EventsConfig(resp *http.Response, cfg Config) (*Stream, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		_ = resp.Body.Close()
		return nil, err
	}
	if err := validateResponse(resp, cfg); err != nil {
		_ = resp.Body.Close()
		return nil, err
	}

	url := ""
	if resp.Request != nil && resp.Request.URL != nil {
		url = resp.Request.URL.String()
	}
	logger.Debug("[eventsource] stream opened", map[string]interface{}{
		"url": url,
	})

	return &Stream{
		decoder: NewDecoderConfig(resp.Body, cfg),
		body:    resp.Body,
	}, nil
}

// validateResponse checks the SSE preconditions before any body byte is
// read.
func validateResponse(resp *http.Response, cfg Config) error {
	if resp.StatusCode != http.StatusOK {
		return NewBadStatusError(resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if cfg.LenientContentType {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != mimeEventStream {
			return NewBadContentTypeError(contentType)
		}
		return nil
	}
	if contentType != mimeEventStream {
		return NewBadContentTypeError(contentType)
	}
	return nil
}

// Next returns the next event. It returns io.EOF when the stream ends,
// idempotently on repeated calls.
//
// An I/O failure is reported once as a transport *Error; the stream is
// terminal afterwards and further calls return io.EOF. Callers must check
// each item independently and must not assume the stream continues after
// a failure.
func (s *Stream) Next() (*Event, error) {
	if s.err != nil {
		return nil, io.EOF
	}

	event, err := s.decoder.Next()
	if err != nil {
		s.err = err
		if err == io.EOF {
			return nil, io.EOF
		}
		terr := err
		if !IsTransport(err) {
			terr = NewTransportError(err)
		}
		logger.Warn("[eventsource] stream failed", map[string]interface{}{
			"error": terr.Error(),
		})
		return nil, terr
	}
	return event, nil
}

// Close releases the underlying response body. It is safe to call Close
// more than once, and dropping the stream via Close stops all reads
// promptly; no background work continues.
func (s *Stream) Close() error {
	if s.err == nil {
		s.err = io.EOF
	}
	return s.body.Close()
}
