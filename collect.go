package octet

import (
	"bytes"
	"context"
	"errors"
	"io"
)

const readChunk = 32 << 10

// collect reads body fully into memory, honoring ctx between reads.
// A limit of zero or less disables the size check.
func collect(ctx context.Context, body io.Reader, declared, limit int64) ([]byte, error) {
	if limit > 0 && declared > limit {
		return nil, ErrBodyTooLarge
	}
	if body == nil {
		return []byte{}, nil
	}

	// Content-Length is client input; pre-size at most one chunk.
	var buf bytes.Buffer
	if declared > 0 {
		buf.Grow(int(min(declared, readChunk)))
	}

	chunk := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := body.Read(chunk)
		if n > 0 {
			if limit > 0 && int64(buf.Len()+n) > limit {
				return nil, ErrBodyTooLarge
			}
			buf.Write(chunk[:n])
		}
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
