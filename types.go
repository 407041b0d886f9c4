package aielib

import "fmt"

// TileType identifies the kind of tile inside the AI Engine array.
type TileType uint8

const (
	TileTypeAIE TileType = iota
	TileTypeShimPL
	TileTypeShimNoC
	TileTypeMemory
)

func (t TileType) String() string {
	switch t {
	case TileTypeAIE:
		return "aie"
	case TileTypeShimPL:
		return "shim-pl"
	case TileTypeShimNoC:
		return "shim-noc"
	case TileTypeMemory:
		return "memory"
	default:
		return fmt.Sprintf("tile-type(%d)", uint8(t))
	}
}

// Tile references a single compute tile. It is owned by the caller and
// handed to the backend unmodified.
type Tile struct {
	Col  uint8
	Row  uint8
	Addr uint64 // base address of the tile in the array address space
	Type TileType
}

func (t *Tile) String() string {
	if t == nil {
		return "tile(nil)"
	}
	return fmt.Sprintf("tile(%d,%d)@0x%x", t.Col, t.Row, t.Addr)
}

// Command is a directive sent to a tile. Only the simulator backend
// consumes commands.
type Command struct {
	Code  uint8
	Col   uint8
	Row   uint8
	Word0 uint32
	Word1 uint32
	Data  []byte
}

// MemInst is a mapped device memory region. A nil MemInst means the
// backend does not support memory instances.
//
// The instance is exclusively owned by the caller of MemInit. Close
// releases it; any use after Close is undefined.
type MemInst interface {
	Size() uint64
	VirtAddr() uint64
	PhysAddr() uint64
	// Read32 and Write32 take an absolute physical address inside the region.
	Read32(addr uint64) uint32
	Write32(addr uint64, data uint32)
	Close() error
}
