package octet

import (
	"mime"
	"net/http"
	"strings"
)

// Media types written by this package.
const (
	ContentTypeOctetStream = "application/octet-stream"
	ContentTypeText        = "text/plain; charset=utf-8"
)

const octetStream = "octet-stream"

// IsOctetStream reports whether the headers declare a body this package can
// decode: application/octet-stream, or any application type carrying an
// +octet-stream structured suffix.
//
// It never touches the request body.
func IsOctetStream(h http.Header) bool {
	value := h.Get("Content-Type")
	if value == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return false
	}

	typ, subtype, ok := strings.Cut(mediaType, "/")
	if !ok || typ != "application" {
		return false
	}

	base, suffix, _ := strings.Cut(subtype, "+")
	return base == octetStream || suffix == octetStream
}
