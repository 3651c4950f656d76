// Package msgpack provides a MessagePack codec and request/response adapter.
package msgpack

import (
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/octet"
)

// Codec implements octet.Codec for MessagePack.
type Codec struct{}

// Msgpack is a request or response body encoded as MessagePack.
type Msgpack[T any] = octet.Body[Codec, T]

// New returns a MessagePack codec.
func New() octet.Codec {
	return Codec{}
}

// Format returns the short name of the format.
func (Codec) Format() string {
	return "msgpack"
}

// Marshal encodes v as MessagePack.
func (Codec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (Codec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Wrap creates a Msgpack body owning v.
func Wrap[T any](v T) Msgpack[T] {
	return octet.Wrap[Codec](v)
}

// Extract decodes a MessagePack request body into T.
func Extract[T any](r *http.Request) (Msgpack[T], error) {
	return octet.Extract[Codec, T](r)
}

// ExtractWith is Extract with explicit options.
func ExtractWith[T any](r *http.Request, opts octet.Options) (Msgpack[T], error) {
	return octet.ExtractWith[Codec, T](r, opts)
}
