// Package octet binds binary codecs to net/http request extraction and
// response construction.
//
// The package offers a Codec interface for marshaling/unmarshaling data,
// along with a generic Body wrapper that validates an inbound request's media
// type, decodes its body into a typed value, and encodes a typed value back
// into an application/octet-stream response.
//
// # Media Types
//
// A request body is only decoded when its Content-Type is application and
// either the subtype or the structured suffix is octet-stream:
//
//	application/octet-stream              accepted
//	application/vnd.custom+octet-stream   accepted
//	application/json                      rejected
//	(missing)                             rejected
//
// # Basic Usage
//
//	type User struct {
//	    Name string `bson:"name"`
//	}
//
//	func create(w http.ResponseWriter, r *http.Request) {
//	    body, err := bson.Extract[User](r)
//	    if err != nil {
//	        var rej *octet.Rejection
//	        if errors.As(err, &rej) {
//	            rej.Response().Write(w)
//	        }
//	        return
//	    }
//
//	    user := body.Value()
//	    user.Name = strings.ToUpper(user.Name)
//
//	    body.ServeHTTP(w, r)
//	}
//
// Or let Handle do the wiring:
//
//	h, _ := octet.Handle[bson.Codec](func(ctx context.Context, in User) (User, error) {
//	    return in, nil
//	})
//	mux.Handle("POST /users", h)
//
// # Rejections
//
// Every extraction failure is a *Rejection answered with 400 Bad Request and
// a plain-text message:
//
//   - ErrMissingContentType: header absent, unparseable, or not octet-stream
//   - ErrBytesRead: body stream failure, cancellation, or size limit
//   - ErrDecode: the codec rejected the bytes
//
// Encoding failures on the response path never escape as errors; they are
// answered with 500 Internal Server Error.
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - bson - BSON encoding (mongo-driver)
//   - msgpack - MessagePack encoding (vmihailenco/msgpack)
package octet

import (
	"context"
	"net/http"
)

// Codec provides binary marshaling for a single format.
//
// Implementations must be usable as zero values: Body resolves its codec
// from the type parameter alone.
type Codec interface {
	// Format returns the short name of the format (e.g., "bson").
	Format() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Extractor builds itself from an inbound request.
// *Body implements Extractor.
type Extractor interface {
	// Extract validates and decodes r into the receiver.
	// On failure the receiver is left untouched and a *Rejection is returned.
	Extract(r *http.Request) error
}

// Responder turns itself into an outbound response.
// Body implements Responder.
type Responder interface {
	// Response never fails; encoding problems are expressed as a 500 response.
	Response(ctx context.Context) *Response
}
