package octet

import (
	"errors"
	"net/http"
	"strconv"
)

// Response is an outbound response: status, headers and body bytes.
type Response struct {
	// Status is the HTTP status code. Zero leaves the pipeline default (200).
	Status int

	Header http.Header
	Body   []byte

	// Err is the encoding failure behind a 500 response. It is never written.
	Err error
}

// StatusCode returns the status that Write sends.
func (r *Response) StatusCode() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}

// Write copies the response onto w.
func (r *Response) Write(w http.ResponseWriter) error {
	h := w.Header()
	for key, values := range r.Header {
		h[key] = append([]string(nil), values...)
	}
	if r.Status != 0 {
		w.WriteHeader(r.Status)
	}
	_, err := w.Write(r.Body)
	return err
}

// EncodeFailure maps a response encoding error to a plain-text 500 response.
// The server produced a value it cannot serialize; the caller is not at fault.
// The body carries the codec's own message.
func EncodeFailure(err error) *Response {
	msg := err.Error()
	var ce *CodecError
	if errors.As(err, &ce) && ce.Cause != nil {
		msg = ce.Cause.Error()
	}

	resp := textResponse(http.StatusInternalServerError, msg)
	resp.Err = err
	return resp
}

func binaryResponse(data []byte) *Response {
	return &Response{
		Header: http.Header{
			"Content-Type":   {ContentTypeOctetStream},
			"Content-Length": {strconv.Itoa(len(data))},
		},
		Body: data,
	}
}

func textResponse(status int, msg string) *Response {
	return &Response{
		Status: status,
		Header: http.Header{
			"Content-Type":           {ContentTypeText},
			"Content-Length":         {strconv.Itoa(len(msg))},
			"X-Content-Type-Options": {"nosniff"},
		},
		Body: []byte(msg),
	}
}
