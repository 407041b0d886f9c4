package aielib

import (
	"fmt"
	"io"
)

// LinuxBackend forwards to a memory mapped device on an OS hosted target.
type LinuxBackend struct {
	dev DeviceIO
	out io.Writer
}

// NewLinuxBackend wraps the mapped device layer.
func NewLinuxBackend(dev DeviceIO, opts ...BackendOption) *LinuxBackend {
	o := newBackendOptions(opts)
	return &LinuxBackend{dev: dev, out: o.out}
}

func (b *LinuxBackend) Name() string { return "linux" }

// AssertNonvoid is a no-op on this target.
func (b *LinuxBackend) AssertNonvoid(bool) {}

// AssertVoid is a no-op on this target.
func (b *LinuxBackend) AssertVoid(bool) {}

func (b *LinuxBackend) Usleep(usec uint64) error {
	return usleepErr(nativeUsleep(usec))
}

func (b *LinuxBackend) LoadElf(tile *Tile, elfPath string, loadSym bool) error {
	if err := b.dev.LoadElf(tile, elfPath, loadSym); err != nil {
		return fmt.Errorf("failed to load %s on %s: %w", elfPath, tile, err)
	}
	return nil
}

func (b *LinuxBackend) InitDev() error {
	if err := b.dev.Init(); err != nil {
		return fmt.Errorf("failed to initialize device: %w", err)
	}
	return nil
}

func (b *LinuxBackend) InitTile(tile *Tile) error {
	return b.dev.InitTile(tile)
}

func (b *LinuxBackend) Printf(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}

func (b *LinuxBackend) MemInit(idx uint8) MemInst {
	return b.dev.MemInit(idx)
}

func (b *LinuxBackend) MemFinish(m MemInst) {
	if m == nil {
		return
	}
	m.Close()
}

func (b *LinuxBackend) MemSize(m MemInst) uint64 {
	if m == nil {
		return 0
	}
	return m.Size()
}

func (b *LinuxBackend) MemVaddr(m MemInst) uint64 {
	if m == nil {
		return 0
	}
	return m.VirtAddr()
}

func (b *LinuxBackend) MemPaddr(m MemInst) uint64 {
	if m == nil {
		return 0
	}
	return m.PhysAddr()
}

func (b *LinuxBackend) MemWrite32(m MemInst, addr uint64, data uint32) {
	if m == nil {
		return
	}
	m.Write32(addr, data)
}

func (b *LinuxBackend) MemRead32(m MemInst, addr uint64) uint32 {
	if m == nil {
		return 0
	}
	return m.Read32(addr)
}

func (b *LinuxBackend) Read32(addr uint64) uint32        { return b.dev.Read32(addr) }
func (b *LinuxBackend) Write32(addr uint64, data uint32) { b.dev.Write32(addr, data) }

func (b *LinuxBackend) MaskWrite32(addr uint64, mask, data uint32) {
	maskWrite32(b.dev.Read32, b.dev.Write32, addr, mask, data)
}

func (b *LinuxBackend) Read128(addr uint64, data *[4]uint32) {
	read128(b.dev.Read32, addr, data)
}

func (b *LinuxBackend) Write128(addr uint64, data *[4]uint32) {
	b.dev.Write128(addr, data)
}

// WriteCmd is a no-op on this target.
func (b *LinuxBackend) WriteCmd(Command) {}

func (b *LinuxBackend) Close() error {
	return b.dev.Close()
}
