package aielib

// BareMetalBackend forwards to the standalone low level I/O layer.
//
// ELF loading, 128-bit access, memory instances and commands are not
// available on this target.
type BareMetalBackend struct {
	noMem
	io BareMetalIO
}

// NewBareMetalBackend wraps the low level I/O layer.
func NewBareMetalBackend(io BareMetalIO) *BareMetalBackend {
	return &BareMetalBackend{io: io}
}

func (b *BareMetalBackend) Name() string { return "baremetal" }

func (b *BareMetalBackend) AssertNonvoid(cond bool) { b.io.AssertNonvoid(cond) }
func (b *BareMetalBackend) AssertVoid(cond bool)    { b.io.AssertVoid(cond) }

func (b *BareMetalBackend) Usleep(usec uint64) error {
	return usleepErr(b.io.Usleep(usec))
}

// LoadElf always fails.
func (b *BareMetalBackend) LoadElf(*Tile, string, bool) error {
	return ErrLoadUnsupported
}

func (b *BareMetalBackend) InitDev() error       { return nil }
func (b *BareMetalBackend) InitTile(*Tile) error { return nil }

func (b *BareMetalBackend) Printf(format string, args ...any) {
	b.io.Printf(format, args...)
}

func (b *BareMetalBackend) Read32(addr uint64) uint32        { return b.io.In32(addr) }
func (b *BareMetalBackend) Write32(addr uint64, data uint32) { b.io.Out32(addr, data) }

func (b *BareMetalBackend) MaskWrite32(addr uint64, mask, data uint32) {
	maskWrite32(b.io.In32, b.io.Out32, addr, mask, data)
}

// Read128 leaves data untouched.
func (b *BareMetalBackend) Read128(uint64, *[4]uint32) {}

// Write128 is a no-op.
func (b *BareMetalBackend) Write128(uint64, *[4]uint32) {}

func (b *BareMetalBackend) WriteCmd(Command) {}

func (b *BareMetalBackend) Close() error { return nil }
