//go:build aiebaremetal

package platform

import (
	"log/slog"

	aielib "github.com/blacktop/go-aielib"
	"github.com/blacktop/go-aielib/baremetal"
	"github.com/blacktop/go-aielib/config"
)

// Target names the backend compiled into this build.
const Target = "baremetal"

// Open returns a library doing direct pointer I/O. Only cfg's logging
// settings apply.
func Open(cfg *config.Config, logger *slog.Logger) (*aielib.Lib, error) {
	_, logger = defaults(cfg, logger)
	return aielib.New(aielib.NewBareMetalBackend(baremetal.New(baremetal.WithLogger(logger)))), nil
}
