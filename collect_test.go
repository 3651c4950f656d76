package octet

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type brokenReader struct{ err error }

func (r brokenReader) Read([]byte) (int, error) { return 0, r.err }

func TestCollect(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 3*readChunk+7)

	got, err := collect(context.Background(), bytes.NewReader(data), int64(len(data)), 0)
	if err != nil {
		t.Fatalf("collect() error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("collect() returned %d bytes, want %d", len(got), len(data))
	}
}

func TestCollect_NilBody(t *testing.T) {
	got, err := collect(context.Background(), nil, 0, DefaultLimit)
	if err != nil {
		t.Fatalf("collect() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("collect() = %q, want empty", got)
	}
}

func TestCollect_DeclaredLengthOverLimit(t *testing.T) {
	r := strings.NewReader("0123456789")

	_, err := collect(context.Background(), r, 10, 4)
	if !errors.Is(err, ErrBodyTooLarge) {
		t.Errorf("collect() error = %v, want %v", err, ErrBodyTooLarge)
	}
	if r.Len() != 10 {
		t.Error("body should not be read when declared length exceeds limit")
	}
}

func TestCollect_StreamOverLimit(t *testing.T) {
	_, err := collect(context.Background(), strings.NewReader("0123456789"), -1, 4)
	if !errors.Is(err, ErrBodyTooLarge) {
		t.Errorf("collect() error = %v, want %v", err, ErrBodyTooLarge)
	}
}

func TestCollect_ExactlyAtLimit(t *testing.T) {
	got, err := collect(context.Background(), strings.NewReader("0123"), -1, 4)
	if err != nil {
		t.Fatalf("collect() error: %v", err)
	}
	if string(got) != "0123" {
		t.Errorf("collect() = %q, want %q", got, "0123")
	}
}

func TestCollect_StreamError(t *testing.T) {
	streamErr := errors.New("connection reset")

	_, err := collect(context.Background(), brokenReader{err: streamErr}, -1, DefaultLimit)
	if !errors.Is(err, streamErr) {
		t.Errorf("collect() error = %v, want %v", err, streamErr)
	}
}

func TestCollect_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := strings.NewReader("payload")
	_, err := collect(ctx, r, 7, DefaultLimit)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("collect() error = %v, want %v", err, context.Canceled)
	}
	if r.Len() != 7 {
		t.Error("body should not be read after cancellation")
	}
}

func TestCollect_HugeDeclaredLengthWithoutLimit(t *testing.T) {
	got, err := collect(context.Background(), strings.NewReader("x"), 1<<50, 0)
	if err != nil {
		t.Fatalf("collect() error: %v", err)
	}
	if string(got) != "x" {
		t.Errorf("collect() = %q, want %q", got, "x")
	}
}
