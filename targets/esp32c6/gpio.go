//go:build esp32c6

package main

import (
	"runtime/volatile"
	"unsafe"
)

// ESP32-C6 GPIO peripheral memory map (bank 0, lines 0-31)
const (
	gpioBase       = 0x60091000
	gpioOUT        = gpioBase + 0x04 // Output level word
	gpioOUTW1TS    = gpioBase + 0x08 // Write 1 to drive high
	gpioOUTW1TC    = gpioBase + 0x0C // Write 1 to drive low
	gpioENABLE     = gpioBase + 0x20 // Output enable word
	gpioENABLEW1TS = gpioBase + 0x24 // Write 1 to enable output
	gpioENABLEW1TC = gpioBase + 0x28 // Write 1 to disable output
	gpioIN         = gpioBase + 0x3C // Input level word
)

var (
	gpioOutW1TS    = (*volatile.Register32)(unsafe.Pointer(uintptr(gpioOUTW1TS)))
	gpioOutW1TC    = (*volatile.Register32)(unsafe.Pointer(uintptr(gpioOUTW1TC)))
	gpioEnableW1TS = (*volatile.Register32)(unsafe.Pointer(uintptr(gpioENABLEW1TS)))
)

// C6GPIOBank drives bank 0 of the ESP32-C6 GPIO matrix through its
// write-1-to-set/clear registers. A single store acts on the masked
// lines and cannot disturb the others, so no read-modify-write is
// needed.
type C6GPIOBank struct{}

// NewC6GPIOBank returns the bank handle. The ROM bootloader leaves the
// GPIO matrix clocked, so there is nothing to turn on here.
func NewC6GPIOBank() *C6GPIOBank {
	return &C6GPIOBank{}
}

// EnableOutput configures the masked lines as outputs.
func (b *C6GPIOBank) EnableOutput(mask uint32) {
	gpioEnableW1TS.Set(mask)
}

// SetOutput drives the masked lines high.
func (b *C6GPIOBank) SetOutput(mask uint32) {
	gpioOutW1TS.Set(mask)
}

// ClearOutput drives the masked lines low.
func (b *C6GPIOBank) ClearOutput(mask uint32) {
	gpioOutW1TC.Set(mask)
}
