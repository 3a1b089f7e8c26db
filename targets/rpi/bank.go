package main

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// PiBank adapts Broadcom GPIO lines to the 32-line bank interface the
// heartbeat core drives. Lines are resolved once up front; the mask
// operations then fan out to the cached periph.io handles. Masked
// lines that were never requested are skipped, which matches the
// hardware banks ignoring 0 bits.
type PiBank struct {
	pins [32]gpio.PinIO
}

// NewPiBank initializes periph.io and resolves the requested BCM lines.
func NewPiBank(lines ...uint32) (*PiBank, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	b := &PiBank{}
	for _, line := range lines {
		if line > 31 {
			return nil, fmt.Errorf("line %d outside the 32-line bank", line)
		}
		name := fmt.Sprintf("GPIO%d", line)
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("line %s not present on this board", name)
		}
		b.pins[line] = p
	}
	return b, nil
}

// EnableOutput puts the masked lines in output mode, driven low. On
// periph.io the first Out call is what switches a line to output.
func (b *PiBank) EnableOutput(mask uint32) {
	b.each(mask, func(p gpio.PinIO) {
		_ = p.Out(gpio.Low)
	})
}

// SetOutput drives the masked lines high.
func (b *PiBank) SetOutput(mask uint32) {
	b.each(mask, func(p gpio.PinIO) {
		_ = p.Out(gpio.High)
	})
}

// ClearOutput drives the masked lines low.
func (b *PiBank) ClearOutput(mask uint32) {
	b.each(mask, func(p gpio.PinIO) {
		_ = p.Out(gpio.Low)
	})
}

func (b *PiBank) each(mask uint32, fn func(gpio.PinIO)) {
	for line := 0; line < 32; line++ {
		if mask&(1<<line) == 0 || b.pins[line] == nil {
			continue
		}
		fn(b.pins[line])
	}
}
