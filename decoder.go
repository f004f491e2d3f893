package eventsource

import (
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// maxRetryMillis is the largest retry value that converts to a
// time.Duration without overflowing.
const maxRetryMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

// Decoder assembles server-sent events from a raw event stream. It owns the
// pending assembly state and drives the line reader one line at a time; it
// does not own the underlying reader and never closes it.
//
// A Decoder is single-consumer: Next must not be called concurrently.
type Decoder struct {
	lines  *lineReader
	buffer eventBuffer
}

// NewDecoder creates a decoder with default configuration.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderConfig(r, Config{})
}

// NewDecoderConfig creates a decoder with the given configuration.
func NewDecoderConfig(r io.Reader, cfg Config) *Decoder {
	cfg.ApplyDefaults()
	return &Decoder{
		lines: newLineReader(r, cfg.BufferSize, cfg.MaxLineBytes),
	}
}

// Next returns the next complete event. It reads lines until a blank line
// dispatches an event with accumulated data, so nothing is consumed from
// the underlying reader beyond what one event needs.
//
// Next returns io.EOF when the stream ends, idempotently on repeated
// calls. An event still being accumulated when the stream ends without a
// trailing blank line is discarded: the blank line is the only dispatch
// trigger.
func (d *Decoder) Next() (*Event, error) {
	for {
		line, err := d.lines.next()
		if err != nil {
			return nil, err
		}

		// Blank line is the dispatch boundary.
		if line == "" {
			if event := d.buffer.produce(); event != nil {
				return event, nil
			}
			continue
		}

		field, value := parseField(line)
		switch field {
		case "event":
			d.buffer.setType(value)
		case "data":
			d.buffer.pushData(value)
		case "id":
			d.buffer.setID(value)
		case "retry":
			if ms, err := strconv.ParseUint(value, 10, 64); err == nil && ms <= maxRetryMillis {
				d.buffer.setRetry(time.Duration(ms) * time.Millisecond)
			}
			// Unparsable or overflowing retry values are silently ignored.
		default:
			// Unknown fields and comment lines (empty field name) are
			// ignored for forward compatibility.
		}
	}
}

// parseField splits an SSE line into field name and value at the first
// colon. A line with no colon is a field name with an empty value. Exactly
// one leading space after the colon is stripped; further spaces are part
// of the value.
func parseField(line string) (field, value string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return line, ""
	}
	field, value = line[:idx], line[idx+1:]
	if strings.HasPrefix(value, " ") {
		value = value[1:]
	}
	return field, value
}
