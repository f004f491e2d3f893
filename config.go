package eventsource

import "fmt"

// mimeEventStream is the required Content-Type for SSE responses.
const mimeEventStream = "text/event-stream"

const (
	defaultBufferSize   = 4 * 1024
	defaultMaxLineBytes = 1024 * 1024
)

// Config configures stream decoding and the convenience Client.
type Config struct {
	// BufferSize is the initial read buffer size in bytes. Defaults to 4KiB.
	BufferSize int `yaml:"buffer_size" mapstructure:"buffer_size"`

	// MaxLineBytes caps the length of a single line. Lines longer than this
	// fail the stream with a transport error. Defaults to 1MiB. Set to -1
	// to disable the cap.
	MaxLineBytes int `yaml:"max_line_bytes" mapstructure:"max_line_bytes"`

	// LenientContentType parses the Content-Type header as a media type,
	// tolerating parameters such as "; charset=utf-8". By default the
	// header must equal "text/event-stream" byte for byte.
	LenientContentType bool `yaml:"lenient_content_type" mapstructure:"lenient_content_type"`

	// Headers are extra headers applied to requests made by the Client.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// LastEventID is sent as the Last-Event-ID request header when
	// non-empty, letting the server resume from a known position.
	LastEventID string `yaml:"last_event_id" mapstructure:"last_event_id"`
}

// ApplyDefaults fills in unset fields with sensible defaults. Negative
// values are left alone for Validate to reject (except MaxLineBytes,
// where -1 explicitly disables the cap).
func (c *Config) ApplyDefaults() {
	if c.BufferSize == 0 {
		c.BufferSize = defaultBufferSize
	}
	if c.MaxLineBytes == 0 {
		c.MaxLineBytes = defaultMaxLineBytes
	}
	if c.MaxLineBytes < 0 {
		c.MaxLineBytes = 0
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("eventsource: buffer size must be positive")
	}
	return nil
}
