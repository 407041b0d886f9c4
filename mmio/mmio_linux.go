//go:build linux

package mmio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	aielib "github.com/blacktop/go-aielib"
	"github.com/blacktop/go-aielib/config"
	"github.com/blacktop/go-aielib/internal/elfimage"
)

var (
	ErrClosed      = errors.New("mmio: device is closed")
	ErrOutOfBounds = errors.New("mmio: address outside the aperture")
)

var (
	cachedPageSize int
	pageSizeOnce   sync.Once
)

func pageSize() uint64 {
	pageSizeOnce.Do(func() {
		cachedPageSize = unix.Getpagesize()
	})
	return uint64(cachedPageSize)
}

// mapping is a page aligned mmap of [off, off+size) in the device node.
type mapping struct {
	raw  []byte // whole mapped pages
	data []byte // the requested window inside raw
}

func mapRange(fd int, off, size uint64) (*mapping, error) {
	if size == 0 {
		return nil, fmt.Errorf("mmio: map requires a non-zero size")
	}
	ps := pageSize()
	if size > math.MaxInt-2*ps || off > math.MaxInt64-size {
		return nil, fmt.Errorf("mmio: range 0x%x+0x%x too large", off, size)
	}
	start := off &^ (ps - 1)
	delta := off - start
	length := (delta + size + ps - 1) &^ (ps - 1)

	raw, err := unix.Mmap(fd, int64(start), int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map 0x%x bytes at 0x%x: %w", length, start, err)
	}
	return &mapping{raw: raw, data: raw[delta : delta+size]}, nil
}

func (m *mapping) unmap() error {
	if m == nil || m.raw == nil {
		return nil
	}
	err := unix.Munmap(m.raw)
	m.raw, m.data = nil, nil
	return err
}

func word(data []byte, off uint64) (*uint32, bool) {
	if off&3 != 0 || off >= uint64(len(data)) || uint64(len(data))-off < 4 {
		return nil, false
	}
	return (*uint32)(unsafe.Pointer(&data[off])), true
}

// Device is a mapped array aperture. It implements aielib.DeviceIO.
type Device struct {
	options

	cfg     config.Device
	regions []config.Region

	mu       sync.RWMutex
	fd       int
	aperture *mapping
	mems     map[*Mem]struct{}
	tiles    map[[2]uint8]uint64
	closed   bool
}

var _ aielib.DeviceIO = (*Device)(nil)

// New returns a device for cfg. Nothing is opened until Init.
func New(dev config.Device, regions []config.Region, opts ...Option) *Device {
	return &Device{
		options: newOptions(opts),
		cfg:     dev,
		regions: regions,
		fd:      -1,
		mems:    make(map[*Mem]struct{}),
		tiles:   make(map[[2]uint8]uint64),
	}
}

// Open creates a device from a full configuration.
func Open(cfg *config.Config, opts ...Option) *Device {
	return New(cfg.Device, cfg.Regions, opts...)
}

// Init opens the device node and maps the array aperture. Calling Init on
// an initialized device does nothing.
func (d *Device) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	if d.aperture != nil {
		return nil
	}

	fd, err := unix.Open(d.cfg.Path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", d.cfg.Path, err)
	}
	m, err := mapRange(fd, d.cfg.MapOffset(), d.cfg.ArraySize)
	if err != nil {
		unix.Close(fd)
		return fmt.Errorf("failed to map array aperture of %s: %w", d.cfg.Path, err)
	}
	d.fd, d.aperture = fd, m

	d.logger.Info("mapped array aperture",
		"path", d.cfg.Path,
		"array_base", fmt.Sprintf("0x%x", d.cfg.ArrayBase),
		"size", d.cfg.ArraySize,
		"regions", len(d.regions))
	return nil
}

// Read32 returns the register at offset addr from the array base. Invalid
// or misaligned accesses read 0.
func (d *Device) Read32(addr uint64) uint32 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.aperture == nil {
		return 0
	}
	p, ok := word(d.aperture.data, addr)
	if !ok {
		d.logger.Debug("read dropped", "addr", addr, "error", ErrOutOfBounds)
		return 0
	}
	return atomic.LoadUint32(p)
}

// Write32 stores data in the register at offset addr from the array base.
// Invalid or misaligned accesses are dropped.
func (d *Device) Write32(addr uint64, data uint32) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.aperture == nil {
		return
	}
	p, ok := word(d.aperture.data, addr)
	if !ok {
		d.logger.Debug("write dropped", "addr", addr, "error", ErrOutOfBounds)
		return
	}
	atomic.StoreUint32(p, data)
}

// Write128 stores four words in ascending address order.
func (d *Device) Write128(addr uint64, data *[4]uint32) {
	for i, w := range data {
		d.Write32(addr+uint64(i)*4, w)
	}
}

// MemInit maps the region at idx. It returns nil when the device is not
// initialized, idx names no region or the mapping fails.
func (d *Device) MemInit(idx uint8) aielib.MemInst {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.aperture == nil {
		d.logger.Warn("memory init before device init", "idx", idx)
		return nil
	}
	if int(idx) >= len(d.regions) {
		d.logger.Warn("no such memory region", "idx", idx, "regions", len(d.regions))
		return nil
	}
	r := d.regions[idx]
	m, err := mapRange(d.fd, r.MapOffset(), r.Size)
	if err != nil {
		d.logger.Error("failed to map memory region", "name", r.Name, "error", err)
		return nil
	}

	mem := &Mem{dev: d, name: r.Name, phys: r.Phys, m: m}
	d.mems[mem] = struct{}{}
	d.logger.Debug("mapped memory region", "name", r.Name, "phys", fmt.Sprintf("0x%x", r.Phys), "size", r.Size)
	return mem
}

func (d *Device) tileInAperture(tile *aielib.Tile) error {
	if tile == nil {
		return fmt.Errorf("mmio: nil tile")
	}
	if tile.Addr >= d.cfg.ArraySize {
		return fmt.Errorf("tile %s at 0x%x: %w", tile, tile.Addr, ErrOutOfBounds)
	}
	return nil
}

// LoadElf writes the executable at elfPath into the memories of tile.
func (d *Device) LoadElf(tile *aielib.Tile, elfPath string, loadSym bool) error {
	if err := d.tileInAperture(tile); err != nil {
		return err
	}
	d.mu.RLock()
	ready := d.aperture != nil
	d.mu.RUnlock()
	if !ready {
		return aielib.ErrNoDevice
	}

	img, err := elfimage.Open(elfPath, loadSym)
	if err != nil {
		return err
	}
	if err := img.Load(tile.Addr, d.Write32); err != nil {
		return err
	}
	d.logger.Debug("loaded elf", "elf", elfPath, "tile", tile.String(), "segments", len(img.Segments), "symbols", len(img.Symbols))
	return nil
}

// InitTile checks that tile lies inside the aperture and records it.
func (d *Device) InitTile(tile *aielib.Tile) error {
	if err := d.tileInAperture(tile); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.aperture == nil {
		return aielib.ErrNoDevice
	}
	d.tiles[[2]uint8{tile.Col, tile.Row}] = tile.Addr
	return nil
}

// Tiles returns the number of initialized tiles.
func (d *Device) Tiles() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.tiles)
}

// Close unmaps every region and the aperture and closes the device node.
// Idempotent.
func (d *Device) Close() error {
	d.mu.Lock()
	mems := make([]*Mem, 0, len(d.mems))
	for m := range d.mems {
		mems = append(mems, m)
	}
	d.mu.Unlock()

	var errs []error
	for _, m := range mems {
		errs = append(errs, m.Close())
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return errors.Join(errs...)
	}
	d.closed = true
	errs = append(errs, d.aperture.unmap())
	d.aperture = nil
	if d.fd >= 0 {
		errs = append(errs, unix.Close(d.fd))
		d.fd = -1
	}
	d.logger.Debug("device closed", "path", d.cfg.Path)
	return errors.Join(errs...)
}

func (d *Device) forget(m *Mem) {
	d.mu.Lock()
	delete(d.mems, m)
	d.mu.Unlock()
}

// Mem is a mapped shared memory region. It implements aielib.MemInst.
type Mem struct {
	dev  *Device
	name string
	phys uint64

	mu sync.RWMutex
	m  *mapping
}

var _ aielib.MemInst = (*Mem)(nil)

// Name returns the configured region name.
func (m *Mem) Name() string { return m.name }

// Size returns the region size in bytes, or 0 once closed.
func (m *Mem) Size() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.m == nil {
		return 0
	}
	return uint64(len(m.m.data))
}

// VirtAddr returns the address of the region in this process.
func (m *Mem) VirtAddr() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.m == nil || len(m.m.data) == 0 {
		return 0
	}
	return uint64(uintptr(unsafe.Pointer(&m.m.data[0])))
}

// PhysAddr returns the physical address of the region.
func (m *Mem) PhysAddr() uint64 { return m.phys }

// Read32 returns the word at physical address addr. Addresses outside the
// region read 0.
func (m *Mem) Read32(addr uint64) uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.m == nil || addr < m.phys {
		return 0
	}
	p, ok := word(m.m.data, addr-m.phys)
	if !ok {
		return 0
	}
	return atomic.LoadUint32(p)
}

// Write32 stores data at physical address addr. Addresses outside the
// region are dropped.
func (m *Mem) Write32(addr uint64, data uint32) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.m == nil || addr < m.phys {
		return
	}
	if p, ok := word(m.m.data, addr-m.phys); ok {
		atomic.StoreUint32(p, data)
	}
}

// Close unmaps the region. Idempotent.
func (m *Mem) Close() error {
	m.mu.Lock()
	if m.m == nil {
		m.mu.Unlock()
		return nil
	}
	err := m.m.unmap()
	m.m = nil
	m.mu.Unlock()

	m.dev.forget(m)
	return err
}
