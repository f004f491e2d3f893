package eventsource

import "time"

// defaultEventType is used when the server never sent an "event:" field
// for the current event.
const defaultEventType = "message"

// Event is a single server-sent event.
type Event struct {
	// Type is the event type from the "event:" field.
	// Defaults to "message" when the server did not set one.
	Type string
	// Data is the event payload. Multiple "data:" lines in one event are
	// joined with newlines, in arrival order.
	Data string
	// LastEventID is the value of the most recent "id:" field observed on
	// the stream. It persists across events until the server sends a new
	// one. Empty when the server never sent an ID.
	LastEventID string
	// Retry is the reconnection interval from the most recent "retry:"
	// field, zero when never sent. Like LastEventID it persists across
	// events. This library does not reconnect; the value is surfaced for
	// callers that implement their own reconnection policy.
	Retry time.Duration
}
