package octet

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMissingContentType indicates the request did not declare an octet-stream body.
	ErrMissingContentType = errors.New("missing octet-stream content type")

	// ErrBytesRead indicates the request body could not be collected.
	ErrBytesRead = errors.New("bytes read error")

	// ErrDecode indicates the codec failed to decode the request body.
	ErrDecode = errors.New("parse error")

	// ErrEncode indicates the codec failed to encode a response value.
	ErrEncode = errors.New("serialize error")

	// ErrBodyTooLarge indicates the request body exceeded the configured limit.
	ErrBodyTooLarge = errors.New("length limit exceeded")
)

// Rejection is the typed failure result of extraction.
// It wraps a sentinel error with the underlying cause, if any.
type Rejection struct {
	Err    error  // Underlying sentinel error (ErrMissingContentType, ErrBytesRead, ErrDecode)
	Format string // Codec format name, used for decode messages
	Cause  error  // Original error from the body collector or codec
}

func (r *Rejection) Error() string {
	switch {
	case r.Cause == nil:
		return r.Err.Error()
	case errors.Is(r.Err, ErrDecode) && r.Format != "":
		return fmt.Sprintf("%s %s: %v", r.Format, r.Err.Error(), r.Cause)
	default:
		return fmt.Sprintf("%s: %v", r.Err.Error(), r.Cause)
	}
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (r *Rejection) Unwrap() []error {
	if r.Cause == nil {
		return []error{r.Err}
	}
	return []error{r.Err, r.Cause}
}

// StatusCode reports the HTTP status for the rejection.
// Every rejection is attributable to the caller's request.
func (*Rejection) StatusCode() int {
	return http.StatusBadRequest
}

// Response renders the rejection as a plain-text 400 response.
func (r *Rejection) Response() *Response {
	return textResponse(r.StatusCode(), r.Error())
}

// CodecError represents a response encoding failure.
type CodecError struct {
	Err    error  // Underlying sentinel error (ErrEncode)
	Format string // Codec format name
	Cause  error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause == nil {
		return e.Err.Error()
	}
	if e.Format != "" {
		return fmt.Sprintf("%s %s: %v", e.Format, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newCodecError creates a CodecError for encode failures.
func newCodecError(sentinel error, format string, cause error) error {
	return &CodecError{
		Err:    sentinel,
		Format: format,
		Cause:  cause,
	}
}

// newRejection creates a Rejection for extraction failures.
func newRejection(sentinel error, format string, cause error) *Rejection {
	return &Rejection{
		Err:    sentinel,
		Format: format,
		Cause:  cause,
	}
}
