// Package baremetal provides the low-level I/O used by the bare-metal target
// of aielib: direct 32-bit loads and stores at physical addresses, busy
// sleeps, Xil-style assertions and a UART for console output.
//
// It only makes sense on a system where the array is identity mapped into
// the address space of the program.
package baremetal

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"

	aielib "github.com/blacktop/go-aielib"
)

// AssertHandler is called with the location of a failed assertion. It is
// expected not to return on real hardware.
type AssertHandler func(file string, line int)

// Option configures an IO.
type Option func(*IO)

// WithUART sets the console writer used by Printf.
func WithUART(w io.Writer) Option {
	return func(p *IO) {
		if w != nil {
			p.uart = w
		}
	}
}

// WithBase offsets every address by base.
func WithBase(base uintptr) Option {
	return func(p *IO) { p.base = base }
}

// WithAssertHandler replaces the default handler, which panics.
func WithAssertHandler(h AssertHandler) Option {
	return func(p *IO) {
		if h != nil {
			p.handler = h
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *IO) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// IO accesses memory through raw pointers. It implements aielib.BareMetalIO.
type IO struct {
	base     uintptr
	uart     io.Writer
	handler  AssertHandler
	logger   *slog.Logger
	occurred atomic.Bool
}

var _ aielib.BareMetalIO = (*IO)(nil)

func New(opts ...Option) *IO {
	p := &IO{
		uart:    os.Stdout,
		handler: panicHandler,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func panicHandler(file string, line int) {
	panic(fmt.Sprintf("baremetal: assertion failed at %s:%d", file, line))
}

func (p *IO) reg(addr uint64) (*uint32, bool) {
	if addr&3 != 0 || addr > uint64(^uintptr(0))-uint64(p.base) {
		return nil, false
	}
	// The array is identity mapped, so the address is the pointer.
	return (*uint32)(unsafe.Pointer(p.base + uintptr(addr))), true
}

// In32 loads the word at addr.
func (p *IO) In32(addr uint64) uint32 {
	r, ok := p.reg(addr)
	if !ok {
		p.logger.Debug("invalid read dropped", "addr", addr)
		return 0
	}
	return atomic.LoadUint32(r)
}

// Out32 stores data at addr.
func (p *IO) Out32(addr uint64, data uint32) {
	r, ok := p.reg(addr)
	if !ok {
		p.logger.Debug("invalid write dropped", "addr", addr)
		return
	}
	atomic.StoreUint32(r, data)
}

// Usleep blocks for usec microseconds. It returns -1 when the duration
// does not fit a time.Duration.
func (p *IO) Usleep(usec uint64) int {
	if usec > uint64(math.MaxInt64/int64(time.Microsecond)) {
		return -1
	}
	time.Sleep(time.Duration(usec) * time.Microsecond)
	return 0
}

func (p *IO) assert(cond bool) {
	if cond {
		return
	}
	p.occurred.Store(true)
	_, file, line, _ := runtime.Caller(2)
	p.logger.Error("assertion failed", "file", file, "line", line)
	p.handler(file, line)
}

// AssertNonvoid fails the assertion when cond is false.
func (p *IO) AssertNonvoid(cond bool) { p.assert(cond) }

// AssertVoid fails the assertion when cond is false.
func (p *IO) AssertVoid(cond bool) { p.assert(cond) }

// AssertOccurred reports whether any assertion has failed.
func (p *IO) AssertOccurred() bool { return p.occurred.Load() }

// ResetAssert clears the failed assertion status.
func (p *IO) ResetAssert() { p.occurred.Store(false) }

// Printf writes to the UART.
func (p *IO) Printf(format string, args ...any) {
	fmt.Fprintf(p.uart, format, args...)
}
