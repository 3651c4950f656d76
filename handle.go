package octet

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// HandlerFunc is application logic between extraction and response.
type HandlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

// Handle adapts fn into an http.Handler that extracts In from the request
// body and answers with Out, both encoded with C.
//
// Rejections are written as 400 responses. An error from fn that wraps a
// *Rejection is written the same way; any other error is logged and
// answered with a plain-text 500.
func Handle[C Codec, In, Out any](fn HandlerFunc[In, Out], opts ...Option) (http.Handler, error) {
	if fn == nil {
		return nil, fmt.Errorf("handler function cannot be nil")
	}

	options, err := NewOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return &handler[C, In, Out]{fn: fn, opts: options}, nil
}

type handler[C Codec, In, Out any] struct {
	fn   HandlerFunc[In, Out]
	opts Options
}

func (h *handler[C, In, Out]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.opts.Logger.With("method", r.Method, "path", r.URL.Path)

	in, err := ExtractWith[C, In](r, h.opts)
	if err != nil {
		logger.Debug("Request rejected", "error", err)
		h.write(w, rejectionResponse(err), logger)
		return
	}

	out, err := h.fn(r.Context(), in.Into())
	if err != nil {
		var rej *Rejection
		if errors.As(err, &rej) {
			logger.Debug("Request rejected by handler", "error", err)
			h.write(w, rej.Response(), logger)
			return
		}
		logger.Error("Handler failed", "error", err)
		h.write(w, textResponse(http.StatusInternalServerError, "internal server error"), logger)
		return
	}

	resp := Wrap[C](out).Response(r.Context())
	if resp.Err != nil {
		logger.Error("Failed to encode response", "error", resp.Err)
	}
	h.write(w, resp, logger)
}

func (h *handler[C, In, Out]) write(w http.ResponseWriter, resp *Response, logger hclog.Logger) {
	if err := resp.Write(w); err != nil {
		logger.Warn("Failed to write response", "error", err)
	}
}

func rejectionResponse(err error) *Response {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Response()
	}
	return textResponse(http.StatusBadRequest, err.Error())
}
