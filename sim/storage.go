package sim

import (
	"errors"
	"fmt"
)

// ErrBeyondCapacity is returned for accesses past the end of the storage.
var ErrBeyondCapacity = errors.New("sim: access beyond storage capacity")

const pageSize = 4096

// storage keeps the contents of the simulated array address space.
//
// The address space is split in pages that are only allocated the first
// time they are touched, so a sparse 64-bit space costs only what is used.
// Untouched bytes read as zero.
type storage struct {
	capacity uint64
	pages    map[uint64][]byte
}

func newStorage(capacity uint64) *storage {
	return &storage{
		capacity: capacity,
		pages:    make(map[uint64][]byte),
	}
}

func (s *storage) check(addr, n uint64) error {
	if addr >= s.capacity || n > s.capacity-addr {
		return fmt.Errorf("0x%x+%d: %w", addr, n, ErrBeyondCapacity)
	}
	return nil
}

// page returns the page holding addr and the offset of addr in it. When
// alloc is false a missing page is returned as nil.
func (s *storage) page(addr uint64, alloc bool) ([]byte, uint64) {
	base := addr &^ (pageSize - 1)
	p, ok := s.pages[base]
	if !ok && alloc {
		p = make([]byte, pageSize)
		s.pages[base] = p
	}
	return p, addr - base
}

func (s *storage) read(addr uint64, buf []byte) error {
	if err := s.check(addr, uint64(len(buf))); err != nil {
		return err
	}
	for done := 0; done < len(buf); {
		p, off := s.page(addr+uint64(done), false)
		n := min(len(buf)-done, int(pageSize-off))
		if p == nil {
			clear(buf[done : done+n])
		} else {
			copy(buf[done:done+n], p[off:])
		}
		done += n
	}
	return nil
}

func (s *storage) write(addr uint64, data []byte) error {
	if err := s.check(addr, uint64(len(data))); err != nil {
		return err
	}
	for done := 0; done < len(data); {
		p, off := s.page(addr+uint64(done), true)
		n := copy(p[off:], data[done:])
		done += n
	}
	return nil
}

// allocated returns the number of pages backing the storage.
func (s *storage) allocated() int {
	return len(s.pages)
}
