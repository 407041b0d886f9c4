//go:build !linux

package mmio

import (
	aielib "github.com/blacktop/go-aielib"
	"github.com/blacktop/go-aielib/config"
)

// Device is unavailable outside Linux. Every operation fails with
// aielib.ErrNotSupported or does nothing.
type Device struct {
	options
}

var _ aielib.DeviceIO = (*Device)(nil)

func New(dev config.Device, regions []config.Region, opts ...Option) *Device {
	return &Device{options: newOptions(opts)}
}

func Open(cfg *config.Config, opts ...Option) *Device {
	return New(cfg.Device, cfg.Regions, opts...)
}

func (d *Device) Init() error                  { return aielib.ErrNotSupported }
func (d *Device) Read32(uint64) uint32         { return 0 }
func (d *Device) Write32(uint64, uint32)       {}
func (d *Device) Write128(uint64, *[4]uint32)  {}
func (d *Device) MemInit(uint8) aielib.MemInst { return nil }
func (d *Device) InitTile(*aielib.Tile) error  { return aielib.ErrNotSupported }
func (d *Device) Tiles() int                   { return 0 }
func (d *Device) Close() error                 { return nil }

func (d *Device) LoadElf(*aielib.Tile, string, bool) error {
	return aielib.ErrNotSupported
}
