// Package elfimage extracts loadable segments from AI Engine core
// executables and writes them into a tile's program and data memories.
package elfimage

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Tile memory layout, relative to the tile base address.
const (
	ProgMemOffset = 0x20000
	ProgMemSize   = 0x4000
	DataMemOffset = 0x0
	DataMemSize   = 0x8000
	DataMemMask   = DataMemSize - 1
)

var (
	ErrNoLoadable      = errors.New("elfimage: no loadable segment")
	ErrSegmentTooLarge = errors.New("elfimage: segment does not fit in tile memory")
)

// Segment is one PT_LOAD program header with its file contents.
type Segment struct {
	Addr    uint64 // physical address as seen by the core
	Exec    bool
	Data    []byte
	MemSize uint64 // >= len(Data); the tail is zero filled
}

// Image is a parsed executable.
type Image struct {
	Entry    uint64
	Segments []Segment
	Symbols  map[string]uint64 // nil unless requested
}

// Open reads the executable at path.
func Open(path string, withSymbols bool) (*Image, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open elf %s: %w", path, err)
	}
	defer f.Close()
	return fromFile(f, withSymbols)
}

// Parse reads an executable from r.
func Parse(r io.ReaderAt, withSymbols bool) (*Image, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse elf: %w", err)
	}
	return fromFile(f, withSymbols)
}

func fromFile(f *elf.File, withSymbols bool) (*Image, error) {
	img := &Image{Entry: f.Entry}

	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD || p.Memsz == 0 {
			continue
		}
		if p.Filesz > p.Memsz {
			return nil, fmt.Errorf("segment at 0x%x: file size 0x%x exceeds memory size 0x%x", p.Paddr, p.Filesz, p.Memsz)
		}
		data := make([]byte, p.Filesz)
		if _, err := io.ReadFull(p.Open(), data); err != nil {
			return nil, fmt.Errorf("failed to read segment at 0x%x: %w", p.Paddr, err)
		}
		img.Segments = append(img.Segments, Segment{
			Addr:    p.Paddr,
			Exec:    p.Flags&elf.PF_X != 0,
			Data:    data,
			MemSize: p.Memsz,
		})
	}
	if len(img.Segments) == 0 {
		return nil, ErrNoLoadable
	}

	if withSymbols {
		img.Symbols = make(map[string]uint64)
		syms, err := f.Symbols()
		if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
			return nil, fmt.Errorf("failed to read symbols: %w", err)
		}
		for _, s := range syms {
			if s.Name != "" {
				img.Symbols[s.Name] = s.Value
			}
		}
	}

	return img, nil
}

// Target returns the array address of the segment's first byte for the
// tile based at tileAddr. Data segments are placed by their offset inside
// the data memory window.
func (s Segment) Target(tileAddr uint64) uint64 {
	if s.Exec {
		return tileAddr + ProgMemOffset + s.Addr
	}
	return tileAddr + DataMemOffset + s.Addr&DataMemMask
}

func (s Segment) fits() bool {
	addr, limit := s.Addr&DataMemMask, uint64(DataMemSize)
	if s.Exec {
		addr, limit = s.Addr, ProgMemSize
	}
	if s.MemSize > limit || addr > limit {
		return false
	}
	return addr+(s.MemSize+3)&^3 <= limit
}

// Load writes every segment word by word through write32.
func (img *Image) Load(tileAddr uint64, write32 func(addr uint64, data uint32)) error {
	for _, s := range img.Segments {
		if !s.fits() {
			return fmt.Errorf("segment at 0x%x (%d bytes): %w", s.Addr, s.MemSize, ErrSegmentTooLarge)
		}
	}

	for _, s := range img.Segments {
		base := s.Target(tileAddr)
		var word [4]byte
		for off := uint64(0); off < s.MemSize; off += 4 {
			word = [4]byte{}
			if off < uint64(len(s.Data)) {
				copy(word[:], s.Data[off:])
			}
			write32(base+off, binary.LittleEndian.Uint32(word[:]))
		}
	}
	return nil
}
