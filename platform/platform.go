// Package platform picks the aielib backend at build time.
//
// The default build talks to a mapped device on Linux. Build with the
// aiesim tag for the in-memory simulator or with aiebaremetal for direct
// pointer I/O:
//
//	go build -tags aiesim ./...
package platform

import (
	"io"
	"log/slog"

	"github.com/blacktop/go-aielib/config"
)

func defaults(cfg *config.Config, logger *slog.Logger) (*config.Config, *slog.Logger) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg, logger.With("target", Target)
}
