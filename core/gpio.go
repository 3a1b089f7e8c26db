// GPIO bank abstraction for the heartbeat firmware.
// Targets implement GPIOBank over their set/clear style registers;
// core code addresses single lines through OutputPin.
package core

import "errors"

// GPIOPin identifies a line position within a 32-line GPIO bank
type GPIOPin uint32

// MaxGPIOPin is the highest line position addressable in one bank.
const MaxGPIOPin GPIOPin = 31

// ErrPinOutOfRange is returned when a pin position exceeds MaxGPIOPin.
var ErrPinOutOfRange = errors.New("gpio: pin position out of range")

// GPIOBank is the abstract register interface to one 32-line GPIO bank.
// Platform-specific implementations map the operations onto the bank's
// write-1-to-set / write-1-to-clear registers: a 1 bit in mask acts on
// that line, 0 bits leave the other lines untouched. The operations
// cannot fail; bounds are enforced by OutputPin before a mask is built.
type GPIOBank interface {
	// EnableOutput configures the masked lines as digital outputs
	EnableOutput(mask uint32)

	// SetOutput drives the masked lines high
	SetOutput(mask uint32)

	// ClearOutput drives the masked lines low
	ClearOutput(mask uint32)
}

// OutputPin drives one line of a GPIOBank. The zero value is not
// usable; construct with NewOutputPin, which validates the line
// position once so the per-beat path stays check-free.
type OutputPin struct {
	bank GPIOBank
	mask uint32
}

// NewOutputPin binds one bank line as a single-bit output handle.
// Returns ErrPinOutOfRange if pin is above MaxGPIOPin.
func NewOutputPin(bank GPIOBank, pin GPIOPin) (*OutputPin, error) {
	if pin > MaxGPIOPin {
		return nil, ErrPinOutOfRange
	}
	return &OutputPin{bank: bank, mask: 1 << pin}, nil
}

// EnableOutput configures the line as a digital output.
func (p *OutputPin) EnableOutput() {
	p.bank.EnableOutput(p.mask)
}

// High drives the line high.
func (p *OutputPin) High() {
	p.bank.SetOutput(p.mask)
}

// Low drives the line low.
func (p *OutputPin) Low() {
	p.bank.ClearOutput(p.mask)
}

// Mask returns the single-bit mask of the bound line.
func (p *OutputPin) Mask() uint32 {
	return p.mask
}
