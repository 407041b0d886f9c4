package aielib

import (
	"fmt"
	"io"
)

// SimBackend forwards to the AI Engine simulator.
type SimBackend struct {
	noMem
	api SimAPI
	out io.Writer
}

// NewSimBackend wraps the simulator api.
func NewSimBackend(api SimAPI, opts ...BackendOption) *SimBackend {
	o := newBackendOptions(opts)
	return &SimBackend{api: api, out: o.out}
}

func (b *SimBackend) Name() string { return "sim" }

func (b *SimBackend) AssertNonvoid(cond bool) { b.api.AssertNonvoid(cond) }
func (b *SimBackend) AssertVoid(cond bool)    { b.api.AssertVoid(cond) }

func (b *SimBackend) Usleep(usec uint64) error {
	return usleepErr(b.api.Usleep(usec))
}

func (b *SimBackend) LoadElf(tile *Tile, elfPath string, loadSym bool) error {
	if err := statusErr(b.api.LoadElf(tile, elfPath, loadSym)); err != nil {
		return fmt.Errorf("failed to load %s on %s: %w", elfPath, tile, ErrLoadFailed)
	}
	return nil
}

// InitDev is a no-op, the simulator needs no global setup.
func (b *SimBackend) InitDev() error { return nil }

// InitTile always succeeds.
func (b *SimBackend) InitTile(*Tile) error { return nil }

// Printf writes straight to the output channel; the simulator's own print
// path is only available in debug builds of the driver.
func (b *SimBackend) Printf(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}

func (b *SimBackend) Read32(addr uint64) uint32        { return b.api.Read32(addr) }
func (b *SimBackend) Write32(addr uint64, data uint32) { b.api.Write32(addr, data) }

// Read128 reads four words through the simulator's 32-bit path.
func (b *SimBackend) Read128(addr uint64, data *[4]uint32) {
	read128(b.api.Read32, addr, data)
}

func (b *SimBackend) Write128(addr uint64, data *[4]uint32) { b.api.Write128(addr, data) }

func (b *SimBackend) MaskWrite32(addr uint64, mask, data uint32) {
	b.api.MaskWrite32(addr, mask, data)
}

func (b *SimBackend) WriteCmd(cmd Command) { b.api.WriteCmd(cmd) }

// Close releases the simulator if it holds resources.
func (b *SimBackend) Close() error {
	if c, ok := b.api.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
