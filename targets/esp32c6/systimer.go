//go:build esp32c6

package main

import (
	"runtime/volatile"
	"unsafe"
)

// ESP32-C6 SYSTIMER peripheral. Unit 0 counts at 16MHz from reset;
// the 52-bit value is read through a latch: request an update, wait
// for the valid flag, then read HI and LO.
const (
	systimerBase    = 0x6000A000
	systimerCONF    = systimerBase + 0x00 // Clock gate and unit enables
	systimerUNIT0OP = systimerBase + 0x04 // Latch request / valid flag
	systimerU0HI    = systimerBase + 0x40 // Latched value, bits 51:32
	systimerU0LO    = systimerBase + 0x44 // Latched value, bits 31:0

	systimerClkEn    = 1 << 31 // CONF: keep register clock on
	systimerU0WorkEn = 1 << 30 // CONF: unit 0 counting
	systimerU0Update = 1 << 30 // UNIT0_OP: latch the counter now
	systimerU0Valid  = 1 << 29 // UNIT0_OP: latched value readable

	// systimerHz is the fixed SYSTIMER tick rate (XTAL 40MHz / 2.5).
	systimerHz = 16000000

	ticksPerMicro = systimerHz / 1000000
)

var (
	systimerConf = (*volatile.Register32)(unsafe.Pointer(uintptr(systimerCONF)))
	systimerOp   = (*volatile.Register32)(unsafe.Pointer(uintptr(systimerUNIT0OP)))
	systimerHi   = (*volatile.Register32)(unsafe.Pointer(uintptr(systimerU0HI)))
	systimerLo   = (*volatile.Register32)(unsafe.Pointer(uintptr(systimerU0LO)))
)

// InitSystimer makes sure unit 0 is counting. The ROM bootloader
// normally leaves it running; setting the enables again is harmless.
func InitSystimer() {
	systimerConf.SetBits(systimerClkEn | systimerU0WorkEn)
}

// systimerTicks latches and reads the 52-bit unit 0 counter. The latch
// makes the HI/LO pair consistent, so no rollover retry loop is needed.
func systimerTicks() uint64 {
	systimerOp.Set(systimerU0Update)
	for systimerOp.Get()&systimerU0Valid == 0 {
	}
	hi := systimerHi.Get()
	lo := systimerLo.Get()
	return uint64(hi)<<32 | uint64(lo)
}

// NowMicros returns microseconds since reset.
func NowMicros() uint64 {
	return systimerTicks() / ticksPerMicro
}

// C6Delay is the blocking microsecond delay for this MCU.
type C6Delay struct{}

// NewC6Delay returns the delay provider. InitSystimer must have run.
func NewC6Delay() *C6Delay {
	return &C6Delay{}
}

// DelayMicros busy-waits until at least us whole microseconds have
// elapsed on the systimer. It never yields and cannot be cancelled.
func (d *C6Delay) DelayMicros(us uint32) {
	deadline := systimerTicks() + uint64(us)*ticksPerMicro
	for systimerTicks() < deadline {
	}
}
