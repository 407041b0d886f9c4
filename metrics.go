package aielib

import (
	"sync/atomic"
	"time"
)

// Operation metrics for monitoring device access
var (
	// Register access counters
	read32Ops     uint64
	write32Ops    uint64
	maskWriteOps  uint64
	read128Ops    uint64
	write128Ops   uint64
	commandOps    uint64
	memInitOps    uint64
	memFinishOps  uint64
	memAccessOps  uint64
	elfLoads      uint64
	tileInits     uint64
	sleepOps      uint64
	assertChecks  uint64
	failedAsserts uint64

	// Timing metrics (nanoseconds)
	totalSleepTime uint64

	// Error counters
	loadErrors  uint64
	sleepErrors uint64
	initErrors  uint64
	memFailures uint64
)

// Metrics provides access to operation metrics
type Metrics struct {
	Read32Ops     uint64 `json:"read32_operations"`
	Write32Ops    uint64 `json:"write32_operations"`
	MaskWriteOps  uint64 `json:"mask_write_operations"`
	Read128Ops    uint64 `json:"read128_operations"`
	Write128Ops   uint64 `json:"write128_operations"`
	CommandOps    uint64 `json:"command_operations"`
	MemInitOps    uint64 `json:"mem_init_operations"`
	MemFinishOps  uint64 `json:"mem_finish_operations"`
	MemAccessOps  uint64 `json:"mem_access_operations"`
	ElfLoads      uint64 `json:"elf_loads"`
	TileInits     uint64 `json:"tile_inits"`
	SleepOps      uint64 `json:"sleep_operations"`
	AvgSleepNs    uint64 `json:"avg_sleep_time_ns"`
	AssertChecks  uint64 `json:"assert_checks"`
	FailedAsserts uint64 `json:"failed_asserts"`
	LoadErrors    uint64 `json:"load_errors"`
	SleepErrors   uint64 `json:"sleep_errors"`
	InitErrors    uint64 `json:"init_errors"`
	MemFailures   uint64 `json:"mem_failures"`
}

// GetMetrics returns current operation metrics
func GetMetrics() Metrics {
	sleeps := atomic.LoadUint64(&sleepOps)

	var avgSleep uint64
	if sleeps > 0 {
		avgSleep = atomic.LoadUint64(&totalSleepTime) / sleeps
	}

	return Metrics{
		Read32Ops:     atomic.LoadUint64(&read32Ops),
		Write32Ops:    atomic.LoadUint64(&write32Ops),
		MaskWriteOps:  atomic.LoadUint64(&maskWriteOps),
		Read128Ops:    atomic.LoadUint64(&read128Ops),
		Write128Ops:   atomic.LoadUint64(&write128Ops),
		CommandOps:    atomic.LoadUint64(&commandOps),
		MemInitOps:    atomic.LoadUint64(&memInitOps),
		MemFinishOps:  atomic.LoadUint64(&memFinishOps),
		MemAccessOps:  atomic.LoadUint64(&memAccessOps),
		ElfLoads:      atomic.LoadUint64(&elfLoads),
		TileInits:     atomic.LoadUint64(&tileInits),
		SleepOps:      sleeps,
		AvgSleepNs:    avgSleep,
		AssertChecks:  atomic.LoadUint64(&assertChecks),
		FailedAsserts: atomic.LoadUint64(&failedAsserts),
		LoadErrors:    atomic.LoadUint64(&loadErrors),
		SleepErrors:   atomic.LoadUint64(&sleepErrors),
		InitErrors:    atomic.LoadUint64(&initErrors),
		MemFailures:   atomic.LoadUint64(&memFailures),
	}
}

// ResetMetrics clears all operation metrics
func ResetMetrics() {
	for _, c := range []*uint64{
		&read32Ops, &write32Ops, &maskWriteOps, &read128Ops, &write128Ops,
		&commandOps, &memInitOps, &memFinishOps, &memAccessOps, &elfLoads,
		&tileInits, &sleepOps, &assertChecks, &failedAsserts, &totalSleepTime,
		&loadErrors, &sleepErrors, &initErrors, &memFailures,
	} {
		atomic.StoreUint64(c, 0)
	}
}

// Internal metric recording functions
func recordRead32()    { atomic.AddUint64(&read32Ops, 1) }
func recordWrite32()   { atomic.AddUint64(&write32Ops, 1) }
func recordMaskWrite() { atomic.AddUint64(&maskWriteOps, 1) }
func recordRead128()   { atomic.AddUint64(&read128Ops, 1) }
func recordWrite128()  { atomic.AddUint64(&write128Ops, 1) }
func recordCommand()   { atomic.AddUint64(&commandOps, 1) }
func recordMemAccess() { atomic.AddUint64(&memAccessOps, 1) }
func recordTileInit()  { atomic.AddUint64(&tileInits, 1) }

func recordMemInit(ok bool) {
	atomic.AddUint64(&memInitOps, 1)
	if !ok {
		atomic.AddUint64(&memFailures, 1)
	}
}

func recordMemFinish() {
	atomic.AddUint64(&memFinishOps, 1)
}

func recordAssert(cond bool) {
	atomic.AddUint64(&assertChecks, 1)
	if !cond {
		atomic.AddUint64(&failedAsserts, 1)
	}
}

func recordElfLoad(err error) {
	atomic.AddUint64(&elfLoads, 1)
	if err != nil {
		atomic.AddUint64(&loadErrors, 1)
	}
}

func recordSleep(duration time.Duration, err error) {
	atomic.AddUint64(&sleepOps, 1)
	atomic.AddUint64(&totalSleepTime, uint64(duration.Nanoseconds()))
	if err != nil {
		atomic.AddUint64(&sleepErrors, 1)
	}
}

func recordInitError() {
	atomic.AddUint64(&initErrors, 1)
}
