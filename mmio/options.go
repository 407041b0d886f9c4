// Package mmio maps an AI Engine array and its shared memory regions from a
// device node and serves the Linux target of aielib.
//
// Register accesses are single 32-bit loads and stores on the mapping.
// Addresses passed to Read32 and Write32 are offsets from the array base,
// the same tile addresses the simulator uses. Memory instance accesses take
// absolute physical addresses inside the region.
package mmio

import (
	"io"
	"log/slog"
)

// Option configures a Device.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
