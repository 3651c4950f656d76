package octet

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"time"
)

// Body holds exactly one value of T, encoded and decoded with codec C.
//
// A Body is produced either by successful extraction from a request or by
// wrapping a value with Wrap. It is never partially decoded.
type Body[C Codec, T any] struct {
	value T
}

// Wrap creates a Body owning v.
func Wrap[C Codec, T any](v T) Body[C, T] {
	return Body[C, T]{value: v}
}

// Value returns a pointer to the held value for reading and mutation.
func (b *Body[C, T]) Value() *T {
	return &b.value
}

// Into returns the held value.
func (b Body[C, T]) Into() T {
	return b.value
}

// Extract validates and decodes r into b using DefaultOptions.
// On failure b is left untouched.
func (b *Body[C, T]) Extract(r *http.Request) error {
	body, err := ExtractWith[C, T](r, DefaultOptions())
	if err != nil {
		return err
	}
	*b = body
	return nil
}

// Extract validates r's content type, collects its body and decodes it
// into T using DefaultOptions.
func Extract[C Codec, T any](r *http.Request) (Body[C, T], error) {
	return ExtractWith[C, T](r, DefaultOptions())
}

// ExtractWith is Extract with explicit options.
//
// The returned error is always a *Rejection. The content type is checked
// before any body byte is read. The only blocking step is body collection,
// which is abandoned when r's context is done.
func ExtractWith[C Codec, T any](r *http.Request, opts Options) (Body[C, T], error) {
	var codec C
	format := codec.Format()
	typeName := typeNameOf[T]()
	ctx := r.Context()

	start := time.Now()
	emitExtractStart(ctx, format, typeName)

	var size int
	var retErr error
	defer func() {
		emitExtractComplete(ctx, format, typeName, size, time.Since(start), retErr)
	}()

	if !IsOctetStream(r.Header) {
		retErr = newRejection(ErrMissingContentType, format, nil)
		return Body[C, T]{}, retErr
	}

	data, err := collect(ctx, r.Body, r.ContentLength, opts.Limit)
	if err != nil {
		retErr = newRejection(ErrBytesRead, format, err)
		return Body[C, T]{}, retErr
	}
	size = len(data)

	value, err := decode[T](codec, data)
	if err != nil {
		retErr = newRejection(ErrDecode, format, err)
		return Body[C, T]{}, retErr
	}

	return Body[C, T]{value: value}, nil
}

// Response encodes the held value into an application/octet-stream response.
// An encoding failure yields a 500 response instead of an error.
func (b Body[C, T]) Response(ctx context.Context) *Response {
	var codec C
	format := codec.Format()

	start := time.Now()
	data, err := encode(codec, b.value)

	var resp *Response
	if err != nil {
		err = newCodecError(ErrEncode, format, err)
		resp = EncodeFailure(err)
	} else {
		resp = binaryResponse(data)
	}

	emitRespondComplete(ctx, format, typeNameOf[T](), resp.StatusCode(), len(resp.Body), time.Since(start), err)
	return resp
}

// ServeHTTP writes the encoded value to w.
func (b Body[C, T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = b.Response(r.Context()).Write(w)
}

// decode runs the codec, turning a codec panic into an error.
func decode[T any](codec Codec, data []byte) (value T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("codec panic: %v", p)
		}
	}()

	var v T
	if err := codec.Unmarshal(data, &v); err != nil {
		return value, err
	}
	return v, nil
}

// encode runs the codec, turning a codec panic into an error.
func encode(codec Codec, v any) (data []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			data, err = nil, fmt.Errorf("codec panic: %v", p)
		}
	}()

	return codec.Marshal(v)
}

func typeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}
