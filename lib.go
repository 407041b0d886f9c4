package aielib

import "time"

// Lib is the device access facade. Every call is forwarded to the Backend
// it was built with; Lib keeps no device state of its own and adds no
// locking, so callers serialize concurrent access themselves.
type Lib struct {
	b Backend
}

// New returns a facade over b. The backend is fixed for the lifetime of
// the facade.
func New(b Backend) *Lib {
	return &Lib{b: b}
}

// Target returns the name of the backend in use.
func (l *Lib) Target() string { return l.b.Name() }

// Backend returns the backend in use.
func (l *Lib) Backend() Backend { return l.b }

// AssertNonvoid checks cond with the backend's assertion handler.
//
// The return value is always 0 whatever cond is. It only mirrors the void
// variant and carries no information; do not branch on it.
func (l *Lib) AssertNonvoid(cond bool) uint32 {
	recordAssert(cond)
	l.b.AssertNonvoid(cond)
	return 0
}

// AssertVoid checks cond with the backend's assertion handler.
func (l *Lib) AssertVoid(cond bool) {
	recordAssert(cond)
	l.b.AssertVoid(cond)
}

// Usleep suspends the calling goroutine for at least usec microseconds.
// It is the only blocking call of the facade and cannot be interrupted.
func (l *Lib) Usleep(usec uint64) error {
	start := time.Now()
	err := l.b.Usleep(usec)
	recordSleep(time.Since(start), err)
	return err
}

// LoadElf loads the executable at elfPath onto tile. loadSym asks the
// backend to also load the symbol table where symbolic debugging is
// supported.
func (l *Lib) LoadElf(tile *Tile, elfPath string, loadSym bool) error {
	err := l.b.LoadElf(tile, elfPath, loadSym)
	recordElfLoad(err)
	return err
}

// InitDev performs the one-time global setup of the backend. It must run
// before any address based operation.
func (l *Lib) InitDev() error {
	err := l.b.InitDev()
	if err != nil {
		recordInitError()
	}
	return err
}

// InitTile performs the per-tile setup of the backend.
func (l *Lib) InitTile(tile *Tile) error {
	recordTileInit()
	err := l.b.InitTile(tile)
	if err != nil {
		recordInitError()
	}
	return err
}

// Printf forwards a formatted message to the backend's output channel.
// The format must never come from untrusted input.
func (l *Lib) Printf(format string, args ...any) {
	l.b.Printf(format, args...)
}

// MemInit creates the memory instance for region idx. It returns nil when
// the backend has no memory instance support. The caller owns the result
// and must release it with MemFinish.
func (l *Lib) MemInit(idx uint8) MemInst {
	m := l.b.MemInit(idx)
	recordMemInit(m != nil)
	return m
}

// MemFinish releases m. m is invalid afterwards.
func (l *Lib) MemFinish(m MemInst) {
	if m == nil {
		return
	}
	recordMemFinish()
	l.b.MemFinish(m)
}

// MemGetSize returns the size in bytes of m, or 0.
func (l *Lib) MemGetSize(m MemInst) uint64 {
	if m == nil {
		return 0
	}
	return l.b.MemSize(m)
}

// MemGetVaddr returns the mapped virtual address of m, or 0.
func (l *Lib) MemGetVaddr(m MemInst) uint64 {
	if m == nil {
		return 0
	}
	return l.b.MemVaddr(m)
}

// MemGetPaddr returns the physical address of m, or 0.
func (l *Lib) MemGetPaddr(m MemInst) uint64 {
	if m == nil {
		return 0
	}
	return l.b.MemPaddr(m)
}

// MemWrite32 writes data at the absolute physical address addr of m.
func (l *Lib) MemWrite32(m MemInst, addr uint64, data uint32) {
	if m == nil {
		return
	}
	recordMemAccess()
	l.b.MemWrite32(m, addr, data)
}

// MemRead32 reads the word at the absolute physical address addr of m.
func (l *Lib) MemRead32(m MemInst, addr uint64) uint32 {
	if m == nil {
		return 0
	}
	recordMemAccess()
	return l.b.MemRead32(m, addr)
}

// Read32 reads the 32-bit register at addr.
func (l *Lib) Read32(addr uint64) uint32 {
	recordRead32()
	return l.b.Read32(addr)
}

// Write32 writes data to the 32-bit register at addr.
func (l *Lib) Write32(addr uint64, data uint32) {
	recordWrite32()
	l.b.Write32(addr, data)
}

// MaskWrite32 clears the bits of mask at addr and sets the bits of data.
// data is expected to be already shifted and masked.
func (l *Lib) MaskWrite32(addr uint64, mask, data uint32) {
	recordMaskWrite()
	l.b.MaskWrite32(addr, mask, data)
}

// Read128 reads the four words at addr, addr+4, addr+8 and addr+12.
func (l *Lib) Read128(addr uint64, data *[4]uint32) {
	recordRead128()
	l.b.Read128(addr, data)
}

// Write128 writes the four words of data starting at addr.
func (l *Lib) Write128(addr uint64, data *[4]uint32) {
	recordWrite128()
	l.b.Write128(addr, data)
}

// WriteCmd sends cmd to the tile at (cmd.Col, cmd.Row).
func (l *Lib) WriteCmd(cmd Command) {
	recordCommand()
	l.b.WriteCmd(cmd)
}

// Close releases the backend.
func (l *Lib) Close() error {
	return l.b.Close()
}
