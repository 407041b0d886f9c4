// Package elftest builds small 32-bit little endian executables for tests.
package elftest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
)

// Segment describes one PT_LOAD program header.
type Segment struct {
	Addr    uint32
	Exec    bool
	Data    []byte
	MemSize uint32 // 0 means len(Data)
}

// Symbol is an entry of the generated .symtab.
type Symbol struct {
	Name  string
	Value uint32
}

const (
	ehdrSize = 52
	phdrSize = 32
	shdrSize = 40
	symSize  = 16
)

// Build returns the bytes of an executable holding segs and syms.
func Build(entry uint32, segs []Segment, syms []Symbol) []byte {
	var (
		payload bytes.Buffer
		phdrs   []elf.Prog32
	)

	dataOff := uint32(ehdrSize + phdrSize*len(segs))
	for _, s := range segs {
		memsz := s.MemSize
		if memsz == 0 {
			memsz = uint32(len(s.Data))
		}
		flags := elf.PF_R | elf.PF_W
		if s.Exec {
			flags = elf.PF_R | elf.PF_X
		}
		phdrs = append(phdrs, elf.Prog32{
			Type:   uint32(elf.PT_LOAD),
			Off:    dataOff + uint32(payload.Len()),
			Vaddr:  s.Addr,
			Paddr:  s.Addr,
			Filesz: uint32(len(s.Data)),
			Memsz:  memsz,
			Flags:  uint32(flags),
			Align:  4,
		})
		payload.Write(s.Data)
	}

	var (
		sections []elf.Section32
		shnum    uint16
		shstrndx uint16
		shoff    uint32
	)
	if len(syms) > 0 {
		strtab := []byte{0}
		symtab := make([]byte, symSize) // index 0 is the null symbol
		for _, s := range syms {
			ent := elf.Sym32{
				Name:  uint32(len(strtab)),
				Value: s.Value,
				Info:  elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC),
				Shndx: uint16(elf.SHN_ABS),
			}
			strtab = append(strtab, s.Name...)
			strtab = append(strtab, 0)
			var b bytes.Buffer
			binary.Write(&b, binary.LittleEndian, ent)
			symtab = append(symtab, b.Bytes()...)
		}
		shstrtab := []byte("\x00.symtab\x00.strtab\x00.shstrtab\x00")

		symOff := dataOff + uint32(payload.Len())
		payload.Write(symtab)
		strOff := dataOff + uint32(payload.Len())
		payload.Write(strtab)
		shstrOff := dataOff + uint32(payload.Len())
		payload.Write(shstrtab)

		sections = []elf.Section32{
			{},
			{Name: 1, Type: uint32(elf.SHT_SYMTAB), Off: symOff, Size: uint32(len(symtab)), Link: 2, Info: 1, Addralign: 4, Entsize: symSize},
			{Name: 9, Type: uint32(elf.SHT_STRTAB), Off: strOff, Size: uint32(len(strtab)), Addralign: 1},
			{Name: 17, Type: uint32(elf.SHT_STRTAB), Off: shstrOff, Size: uint32(len(shstrtab)), Addralign: 1},
		}
		shnum = uint16(len(sections))
		shstrndx = 3
		shoff = dataOff + uint32(payload.Len())
	}

	hdr := elf.Header32{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_NONE),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     entry,
		Phoff:     ehdrSize,
		Shoff:     shoff,
		Ehsize:    ehdrSize,
		Phentsize: phdrSize,
		Phnum:     uint16(len(segs)),
		Shentsize: shdrSize,
		Shnum:     shnum,
		Shstrndx:  shstrndx,
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, hdr)
	for _, ph := range phdrs {
		binary.Write(&out, binary.LittleEndian, ph)
	}
	out.Write(payload.Bytes())
	for _, sh := range sections {
		binary.Write(&out, binary.LittleEndian, sh)
	}
	return out.Bytes()
}

// TB is the part of testing.TB used by Write. GinkgoT satisfies it too.
type TB interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
}

// Write stores the executable in a temporary file and returns its path.
func Write(t TB, entry uint32, segs []Segment, syms []Symbol) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "core.elf")
	if err := os.WriteFile(path, Build(entry, segs, syms), 0o644); err != nil {
		t.Fatalf("failed to write elf: %v", err)
	}
	return path
}
