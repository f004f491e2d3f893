package eventsource

import (
	"strings"
	"time"
)

// eventBuffer accumulates fields for the event currently being assembled.
// eventType and data are cleared on every dispatch; lastEventID and retry
// persist for the lifetime of the stream, per the SSE processing model.
// One eventBuffer is owned by exactly one Decoder and never shared.
type eventBuffer struct {
	eventType   string
	data        strings.Builder
	lastEventID string
	retry       time.Duration
}

// setType replaces the event type of the pending event.
func (b *eventBuffer) setType(eventType string) {
	b.eventType = eventType
}

// pushData appends one "data:" line, inserting a newline separator when
// data has already accumulated.
func (b *eventBuffer) pushData(value string) {
	if b.data.Len() > 0 {
		b.data.WriteByte('\n')
	}
	b.data.WriteString(value)
}

// setID records the last event ID. Not cleared on dispatch.
func (b *eventBuffer) setID(id string) {
	b.lastEventID = id
}

// setRetry records the reconnection interval. Not cleared on dispatch.
func (b *eventBuffer) setRetry(retry time.Duration) {
	b.retry = retry
}

// produce builds the pending event and clears the per-event buffers.
// Returns nil when no data accumulated: a dispatch boundary without data
// discards the pending fields instead of emitting an empty event.
func (b *eventBuffer) produce() *Event {
	eventType := b.eventType
	data := b.data.String()
	b.eventType = ""
	b.data.Reset()

	if data == "" {
		return nil
	}
	if eventType == "" {
		eventType = defaultEventType
	}
	return &Event{
		Type:        eventType,
		Data:        data,
		LastEventID: b.lastEventID,
		Retry:       b.retry,
	}
}
