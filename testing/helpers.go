// Package testing provides test utilities for octet.
package testing

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
)

// Sentinel errors returned by the helper codecs and readers.
var (
	ErrEncodeFailed = errors.New("encode failed")
	ErrDecodeFailed = errors.New("decode failed")
	ErrStream       = errors.New("stream broken")
)

// Payload is the canonical {foo: "bar"} fixture.
type Payload struct {
	Foo string `bson:"foo" msgpack:"foo"`
}

// User is a fixture with several field kinds.
type User struct {
	ID    string   `bson:"id" msgpack:"id"`
	Name  string   `bson:"name" msgpack:"name"`
	Age   int      `bson:"age" msgpack:"age"`
	Roles []string `bson:"roles" msgpack:"roles"`
}

// NewRequest builds a POST request with the given content type and body.
// An empty contentType leaves the header unset.
func NewRequest(contentType string, body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

// NewStreamRequest builds a POST request whose body is read from r.
// ContentLength is unknown.
func NewStreamRequest(contentType string, r io.Reader) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", r)
	req.ContentLength = -1
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

// FailingCodec fails every Marshal and Unmarshal.
type FailingCodec struct{}

// Format returns "failing".
func (FailingCodec) Format() string { return "failing" }

// Marshal always returns ErrEncodeFailed.
func (FailingCodec) Marshal(any) ([]byte, error) { return nil, ErrEncodeFailed }

// Unmarshal always returns ErrDecodeFailed.
func (FailingCodec) Unmarshal([]byte, any) error { return ErrDecodeFailed }

// PanicCodec panics on every Marshal and Unmarshal.
type PanicCodec struct{}

// Format returns "panic".
func (PanicCodec) Format() string { return "panic" }

// Marshal panics.
func (PanicCodec) Marshal(any) ([]byte, error) { panic("marshal exploded") }

// Unmarshal panics.
func (PanicCodec) Unmarshal([]byte, any) error { panic("unmarshal exploded") }

// ErrReader returns Data, then Err. A nil Err ends the stream with io.EOF.
type ErrReader struct {
	Data []byte
	Err  error
	off  int
}

// Read implements io.Reader.
func (r *ErrReader) Read(p []byte) (int, error) {
	if r.off < len(r.Data) {
		n := copy(p, r.Data[r.off:])
		r.off += n
		return n, nil
	}
	if r.Err == nil {
		return 0, io.EOF
	}
	return 0, r.Err
}
