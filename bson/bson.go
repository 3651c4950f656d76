// Package bson provides a BSON codec and request/response adapter.
package bson

import (
	"net/http"

	"github.com/zoobzio/octet"
	"go.mongodb.org/mongo-driver/bson"
)

// Codec implements octet.Codec for BSON.
// Values must encode to a BSON document: structs, maps or bson.D.
type Codec struct{}

// Bson is a request or response body encoded as BSON.
type Bson[T any] = octet.Body[Codec, T]

// New returns a BSON codec.
func New() octet.Codec {
	return Codec{}
}

// Format returns the short name of the format.
func (Codec) Format() string {
	return "bson"
}

// Marshal encodes v as BSON.
func (Codec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (Codec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// Wrap creates a Bson body owning v.
func Wrap[T any](v T) Bson[T] {
	return octet.Wrap[Codec](v)
}

// Extract decodes a BSON request body into T.
func Extract[T any](r *http.Request) (Bson[T], error) {
	return octet.Extract[Codec, T](r)
}

// ExtractWith is Extract with explicit options.
func ExtractWith[T any](r *http.Request, opts octet.Options) (Bson[T], error) {
	return octet.ExtractWith[Codec, T](r, opts)
}
