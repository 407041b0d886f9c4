package aielib

import (
	"io"
	"math"
	"os"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -destination "mock_backend_test.go" -package $GOPACKAGE -write_package_comment=false github.com/blacktop/go-aielib SimAPI,BareMetalIO,DeviceIO,MemInst

// Backend is the capability set a target provides to Lib. Exactly one
// Backend is chosen at program start; Lib forwards every call to it.
type Backend interface {
	Name() string

	AssertNonvoid(cond bool)
	AssertVoid(cond bool)
	Usleep(usec uint64) error
	LoadElf(tile *Tile, elfPath string, loadSym bool) error
	InitDev() error
	InitTile(tile *Tile) error
	Printf(format string, args ...any)

	MemInit(idx uint8) MemInst
	MemFinish(m MemInst)
	MemSize(m MemInst) uint64
	MemVaddr(m MemInst) uint64
	MemPaddr(m MemInst) uint64
	MemWrite32(m MemInst, addr uint64, data uint32)
	MemRead32(m MemInst, addr uint64) uint32

	Read32(addr uint64) uint32
	Write32(addr uint64, data uint32)
	MaskWrite32(addr uint64, mask, data uint32)
	Read128(addr uint64, data *[4]uint32)
	Write128(addr uint64, data *[4]uint32)
	WriteCmd(cmd Command)

	Close() error
}

// SimAPI is the native interface of the AI Engine simulator.
type SimAPI interface {
	AssertNonvoid(cond bool)
	AssertVoid(cond bool)
	// Usleep returns 0 on success and -1 on error.
	Usleep(usec uint64) int
	LoadElf(tile *Tile, elfPath string, loadSym bool) Status
	Read32(addr uint64) uint32
	Write32(addr uint64, data uint32)
	MaskWrite32(addr uint64, mask, data uint32)
	Write128(addr uint64, data *[4]uint32)
	WriteCmd(cmd Command)
}

// BareMetalIO is the low level I/O layer of a standalone (no OS) target.
type BareMetalIO interface {
	In32(addr uint64) uint32
	Out32(addr uint64, data uint32)
	// Usleep returns 0 on success and -1 on error.
	Usleep(usec uint64) int
	AssertNonvoid(cond bool)
	AssertVoid(cond bool)
	Printf(format string, args ...any)
}

// DeviceIO is the memory mapped device layer of an OS hosted target.
type DeviceIO interface {
	Init() error
	Read32(addr uint64) uint32
	Write32(addr uint64, data uint32)
	Write128(addr uint64, data *[4]uint32)
	// MemInit returns nil when the region cannot be mapped.
	MemInit(idx uint8) MemInst
	LoadElf(tile *Tile, elfPath string, loadSym bool) error
	InitTile(tile *Tile) error
	Close() error
}

// BackendOption configures the output channel of a backend adapter.
type BackendOption func(*backendOptions)

type backendOptions struct {
	out io.Writer
}

// WithOutput sets the writer Printf forwards to. Defaults to os.Stdout.
func WithOutput(w io.Writer) BackendOption {
	return func(o *backendOptions) {
		if w != nil {
			o.out = w
		}
	}
}

func newBackendOptions(opts []BackendOption) backendOptions {
	o := backendOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// maxUsleep is the longest sleep representable as a time.Duration.
const maxUsleep = uint64(math.MaxInt64 / int64(time.Microsecond))

// nativeUsleep sleeps on the host clock, following usleep's return convention.
func nativeUsleep(usec uint64) int {
	if usec > maxUsleep {
		return -1
	}
	time.Sleep(time.Duration(usec) * time.Microsecond)
	return 0
}

// maskWrite32 is the read-modify-write shared by every target that does not
// provide a native mask write.
func maskWrite32(read func(uint64) uint32, write func(uint64, uint32), addr uint64, mask, data uint32) {
	val := read(addr)
	val &^= mask
	val |= data
	write(addr, val)
}

// read128 fetches four consecutive words with the target's 32-bit read.
func read128(read func(uint64) uint32, addr uint64, data *[4]uint32) {
	for idx := uint64(0); idx < 4; idx++ {
		data[idx] = read(addr + idx*4)
	}
}

// noMem is embedded by targets without memory instance support.
type noMem struct{}

func (noMem) MemInit(uint8) MemInst              { return nil }
func (noMem) MemFinish(MemInst)                  {}
func (noMem) MemSize(MemInst) uint64             { return 0 }
func (noMem) MemVaddr(MemInst) uint64            { return 0 }
func (noMem) MemPaddr(MemInst) uint64            { return 0 }
func (noMem) MemWrite32(MemInst, uint64, uint32) {}
func (noMem) MemRead32(MemInst, uint64) uint32   { return 0 }
