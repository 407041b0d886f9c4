//go:build aiesim && !aiebaremetal

package platform

import (
	"log/slog"

	aielib "github.com/blacktop/go-aielib"
	"github.com/blacktop/go-aielib/config"
	"github.com/blacktop/go-aielib/sim"
)

// Target names the backend compiled into this build.
const Target = "sim"

// Open returns a library bound to a fresh simulator.
func Open(cfg *config.Config, logger *slog.Logger) (*aielib.Lib, error) {
	cfg, logger = defaults(cfg, logger)
	s := sim.New(
		sim.WithCapacity(cfg.Simulator.Capacity),
		sim.WithStrictAsserts(cfg.Simulator.StrictAsserts),
		sim.WithLogger(logger),
	)
	return aielib.New(aielib.NewSimBackend(s)), nil
}
