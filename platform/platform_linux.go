//go:build !aiesim && !aiebaremetal

package platform

import (
	"log/slog"

	aielib "github.com/blacktop/go-aielib"
	"github.com/blacktop/go-aielib/config"
	"github.com/blacktop/go-aielib/mmio"
)

// Target names the backend compiled into this build.
const Target = "linux"

// Open returns a library bound to the device described by cfg. The device
// is opened by InitDev.
func Open(cfg *config.Config, logger *slog.Logger) (*aielib.Lib, error) {
	cfg, logger = defaults(cfg, logger)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dev := mmio.Open(cfg, mmio.WithLogger(logger))
	return aielib.New(aielib.NewLinuxBackend(dev)), nil
}
