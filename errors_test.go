package eventsource

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewBadStatusError(t *testing.T) {
	err := NewBadStatusError(404)
	if err.StatusCode != 404 {
		t.Errorf("status code = %d, want 404", err.StatusCode)
	}
	want := "eventsource: bad_status: expecting status code 200, found 404"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	if !IsBadStatus(err) || IsBadContentType(err) || IsTransport(err) {
		t.Error("bad status error misclassified")
	}
	if !IsValidation(err) {
		t.Error("bad status error should classify as validation")
	}
}

func TestNewBadContentTypeError(t *testing.T) {
	err := NewBadContentTypeError("text/plain")
	if err.ContentType != "text/plain" {
		t.Errorf("content type = %q, want %q", err.ContentType, "text/plain")
	}
	want := `eventsource: bad_content_type: expecting "text/event-stream" content type, found "text/plain"`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	missing := NewBadContentTypeError("")
	wantMissing := `eventsource: bad_content_type: expecting "text/event-stream" content type, found none`
	if missing.Error() != wantMissing {
		t.Errorf("error = %q, want %q", missing.Error(), wantMissing)
	}
	if !IsBadContentType(err) || !IsValidation(err) {
		t.Error("bad content type error misclassified")
	}
}

func TestNewTransportError(t *testing.T) {
	cause := errors.New("broken pipe")
	err := NewTransportError(cause)
	if !IsTransport(err) || IsValidation(err) {
		t.Error("transport error misclassified")
	}
	if !errors.Is(err, cause) {
		t.Error("transport error does not unwrap to the cause")
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("consume stream: %w", NewBadStatusError(503))

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatal("errors.As failed through wrapping")
	}
	if e.Code != ErrCodeBadStatus || e.StatusCode != 503 {
		t.Errorf("unexpected error after unwrap: %+v", e)
	}
	if !IsBadStatus(wrapped) {
		t.Error("IsBadStatus failed through wrapping")
	}
}

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeBadStatus, "bad_status"},
		{ErrCodeBadContentType, "bad_content_type"},
		{ErrCodeTransport, "transport"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
