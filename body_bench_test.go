package octet_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/zoobzio/octet"
	"github.com/zoobzio/octet/bson"
	"github.com/zoobzio/octet/msgpack"
	octettest "github.com/zoobzio/octet/testing"
)

var benchUser = octettest.User{ID: "123", Name: "Alice", Age: 30, Roles: []string{"admin"}}

func BenchmarkExtract_BSON(b *testing.B) {
	data, _ := bson.Codec{}.Marshal(benchUser)
	req := octettest.NewRequest(octet.ContentTypeOctetStream, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := req.Clone(context.Background())
		r.Body = nopCloser{bytes.NewReader(data)}
		_, _ = octet.Extract[bson.Codec, octettest.User](r)
	}
}

func BenchmarkExtract_MessagePack(b *testing.B) {
	data, _ := msgpack.Codec{}.Marshal(benchUser)
	req := octettest.NewRequest(octet.ContentTypeOctetStream, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := req.Clone(context.Background())
		r.Body = nopCloser{bytes.NewReader(data)}
		_, _ = octet.Extract[msgpack.Codec, octettest.User](r)
	}
}

func BenchmarkResponse_BSON(b *testing.B) {
	body := bson.Wrap(benchUser)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = body.Response(context.Background())
	}
}

func BenchmarkResponse_MessagePack(b *testing.B) {
	body := msgpack.Wrap(benchUser)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = body.Response(context.Background())
	}
}

type nopCloser struct{ *bytes.Reader }

func (nopCloser) Close() error { return nil }
