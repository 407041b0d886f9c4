// Package aielib provides the platform layer of the AI Engine driver: a
// single device access API that is fulfilled by one of three targets.
//
//   - sim: the AI Engine simulator
//   - baremetal: a standalone application doing register I/O directly
//   - linux: an OS hosted application going through mapped device memory
//
// The target is a build time choice. The platform package selects it with
// the aiesim and aiebaremetal build tags (no tag selects linux) and returns
// a ready *Lib:
//
//	lib, err := platform.Open(cfg, logger)
//	if err != nil {
//		log.Fatal("Failed to open AI Engine:", err)
//	}
//	defer lib.Close()
//
//	if err := lib.InitDev(); err != nil {
//		log.Fatal("Failed to initialize device:", err)
//	}
//
// Register access:
//
//	lib.Write32(tile.Addr+0x32000, 0x1)
//	v := lib.Read32(tile.Addr + 0x32004)
//	lib.MaskWrite32(tile.Addr+0x32000, 0x3, 0x2)
//
//	var words [4]uint32
//	lib.Read128(tile.Addr+0x1000, &words)
//
// Memory instances (linux only, nil elsewhere):
//
//	mem := lib.MemInit(0)
//	if mem != nil {
//		defer lib.MemFinish(mem)
//		lib.MemWrite32(mem, lib.MemGetPaddr(mem)+0x100, 0xDEADBEEF)
//	}
//
// A Lib can also be built directly over any Backend, for example in tests:
//
//	lib := aielib.New(aielib.NewSimBackend(sim.New()))
//
// # Error Handling
//
// Fallible operations return an error; nil means success and any other
// value is a failure (see StatusOf). Operations a target does not support
// return a failure or a zero value, never a distinct error kind. Nothing is
// retried or logged by this package.
//
// # Concurrency
//
// Lib adds no locking. Usleep is the only blocking call. A MemInst belongs
// to the caller that created it.
package aielib
