// Package sim implements an in-memory AI Engine simulator that serves the
// simulator target of aielib.
//
// The simulator models the array address space as sparse memory, keeps a
// virtual microsecond clock, records the commands sent to tiles and loads
// core executables into tile memories. It is not safe for concurrent use.
package sim

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"math"
	"runtime"

	"github.com/rs/xid"

	aielib "github.com/blacktop/go-aielib"
	"github.com/blacktop/go-aielib/internal/elfimage"
)

// DefaultCapacity covers the address space of a full array.
const DefaultCapacity = 1 << 36

type tileKey struct{ col, row uint8 }

// Simulator is the simulator backend API.
type Simulator struct {
	id     string
	mem    *storage
	clock  uint64
	cmds   []aielib.Command
	syms   map[tileKey]map[string]uint64
	failed int
	strict bool
	logger *slog.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithCapacity sets the size of the simulated address space.
func WithCapacity(capacity uint64) Option {
	return func(s *Simulator) {
		if capacity > 0 {
			s.mem = newStorage(capacity)
		}
	}
}

// WithStrictAsserts makes a failed assertion panic instead of being counted.
func WithStrictAsserts(strict bool) Option {
	return func(s *Simulator) { s.strict = strict }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a simulator with an empty address space.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		id:     xid.New().String(),
		mem:    newStorage(DefaultCapacity),
		syms:   make(map[tileKey]map[string]uint64),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("sim", s.id)
	return s
}

// ID returns the unique identifier of this simulation.
func (s *Simulator) ID() string { return s.id }

var _ aielib.SimAPI = (*Simulator)(nil)

func (s *Simulator) assert(cond bool, kind string) {
	if cond {
		return
	}
	s.failed++
	_, file, line, _ := runtime.Caller(2)
	s.logger.Error("assertion failed", "kind", kind, "file", file, "line", line, "sim_time_us", s.clock)
	if s.strict {
		panic(fmt.Sprintf("sim: assertion failed at %s:%d", file, line))
	}
}

// AssertNonvoid records a failed assertion when cond is false.
func (s *Simulator) AssertNonvoid(cond bool) { s.assert(cond, "nonvoid") }

// AssertVoid records a failed assertion when cond is false.
func (s *Simulator) AssertVoid(cond bool) { s.assert(cond, "void") }

// FailedAsserts returns the number of failed assertions so far.
func (s *Simulator) FailedAsserts() int { return s.failed }

// Usleep advances the simulation clock by usec microseconds. It returns -1
// when the clock would overflow.
func (s *Simulator) Usleep(usec uint64) int {
	if usec > math.MaxUint64-s.clock {
		return -1
	}
	s.clock += usec
	return 0
}

// Now returns the simulation time in microseconds.
func (s *Simulator) Now() uint64 { return s.clock }

// LoadElf loads the executable at elfPath into the memories of tile.
func (s *Simulator) LoadElf(tile *aielib.Tile, elfPath string, loadSym bool) aielib.Status {
	if tile == nil {
		s.logger.Warn("load elf without tile", "elf", elfPath)
		return aielib.StatusFailure
	}
	img, err := elfimage.Open(elfPath, loadSym)
	if err != nil {
		s.logger.Warn("failed to open elf", "elf", elfPath, "error", err)
		return aielib.StatusFailure
	}
	if err := img.Load(tile.Addr, s.Write32); err != nil {
		s.logger.Warn("failed to load elf", "elf", elfPath, "tile", tile.String(), "error", err)
		return aielib.StatusFailure
	}
	if loadSym {
		s.syms[tileKey{tile.Col, tile.Row}] = img.Symbols
	}
	s.logger.Debug("loaded elf", "elf", elfPath, "tile", tile.String(), "segments", len(img.Segments), "entry", img.Entry)
	return aielib.StatusSuccess
}

// Symbols returns the symbol table loaded for the tile at (col, row), or
// nil when no symbols were loaded.
func (s *Simulator) Symbols(col, row uint8) map[string]uint64 {
	syms, ok := s.syms[tileKey{col, row}]
	if !ok {
		return nil
	}
	return maps.Clone(syms)
}

// Read32 returns the word at addr. Accesses beyond the capacity read 0.
func (s *Simulator) Read32(addr uint64) uint32 {
	var buf [4]byte
	if err := s.mem.read(addr, buf[:]); err != nil {
		s.logger.Debug("read dropped", "addr", addr, "error", err)
		return 0
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// Write32 stores data at addr. Accesses beyond the capacity are dropped.
func (s *Simulator) Write32(addr uint64, data uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], data)
	if err := s.mem.write(addr, buf[:]); err != nil {
		s.logger.Debug("write dropped", "addr", addr, "error", err)
	}
}

// MaskWrite32 clears mask at addr and sets data.
func (s *Simulator) MaskWrite32(addr uint64, mask, data uint32) {
	s.Write32(addr, s.Read32(addr)&^mask|data)
}

// Write128 stores four consecutive words starting at addr.
func (s *Simulator) Write128(addr uint64, data *[4]uint32) {
	var buf [16]byte
	for i, w := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	if err := s.mem.write(addr, buf[:]); err != nil {
		s.logger.Debug("write dropped", "addr", addr, "error", err)
	}
}

// WriteCmd records cmd. The payload is copied.
func (s *Simulator) WriteCmd(cmd aielib.Command) {
	if cmd.Data != nil {
		cmd.Data = append([]byte(nil), cmd.Data...)
	}
	s.cmds = append(s.cmds, cmd)
	s.logger.Debug("command", "code", cmd.Code, "col", cmd.Col, "row", cmd.Row, "word0", cmd.Word0, "word1", cmd.Word1)
}

// Commands returns the commands received so far, oldest first.
func (s *Simulator) Commands() []aielib.Command {
	return append([]aielib.Command(nil), s.cmds...)
}

// Pages returns the number of 4 KiB pages touched by writes.
func (s *Simulator) Pages() int { return s.mem.allocated() }
