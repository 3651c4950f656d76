package octet

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// DefaultLimit is the request body limit applied when no option overrides it.
const DefaultLimit int64 = 2 << 20

// Options contains optional configuration for extraction and Handle.
// NewOptions should be used to create instances of Options.
type Options struct {
	// Limit is the maximum number of body bytes collected during extraction.
	// Zero or less disables the limit.
	Limit int64

	// Logger receives handler diagnostics.
	Logger hclog.Logger
}

// Option defines a functional option for configuring Options.
// Options are applied in order, with later options overriding earlier ones.
type Option func(*Options) error

// NewOptions creates Options with optional configurations applied.
// Starts with default values, then applies options in order.
func NewOptions(opts ...Option) (Options, error) {
	options := DefaultOptions()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&options); err != nil {
			return Options{}, err
		}
	}

	return options, nil
}

// DefaultOptions returns the configuration used by Extract.
func DefaultOptions() Options {
	return Options{
		Limit:  DefaultLimit,
		Logger: hclog.NewNullLogger(),
	}
}

// WithLimit sets the maximum request body size in bytes.
func WithLimit(n int64) Option {
	return func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("body limit must be positive, got %d", n)
		}
		o.Limit = n
		return nil
	}
}

// WithoutLimit disables the request body size limit.
func WithoutLimit() Option {
	return func(o *Options) error {
		o.Limit = 0
		return nil
	}
}

// WithLogger sets the logger used by Handle.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Options) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		o.Logger = logger.Named("octet")
		return nil
	}
}
