// Package sim provides in-memory stand-ins for the hardware the
// firmware drives: a 32-line GPIO bank with write-1-to-set/clear
// register semantics and a virtual microsecond clock. Tests and host
// examples run the heartbeat core against them without a board.
package sim

// Bank is an in-memory 32-line GPIO bank. It behaves like the hardware
// banks: a 1 bit in a mask acts on that line, 0 bits leave the other
// lines untouched, and writes are idempotent.
type Bank struct {
	enable uint32 // output-enable word, one bit per line
	out    uint32 // output level word, one bit per line
}

// NewBank returns a bank with every line as an input driving low.
func NewBank() *Bank {
	return &Bank{}
}

// EnableOutput configures the masked lines as outputs.
func (b *Bank) EnableOutput(mask uint32) {
	b.enable |= mask
}

// SetOutput drives the masked lines high.
func (b *Bank) SetOutput(mask uint32) {
	b.out |= mask
}

// ClearOutput drives the masked lines low.
func (b *Bank) ClearOutput(mask uint32) {
	b.out &^= mask
}

// Snapshot returns the enable and output words.
func (b *Bank) Snapshot() (enable, out uint32) {
	return b.enable, b.out
}

// IsOutput reports whether the line is configured as an output.
func (b *Bank) IsOutput(line uint32) bool {
	return b.enable&(1<<line) != 0
}

// Level reports whether the line is driven high.
func (b *Bank) Level(line uint32) bool {
	return b.out&(1<<line) != 0
}

// Preset force-loads both words, for tests that start from a dirty bank.
func (b *Bank) Preset(enable, out uint32) {
	b.enable = enable
	b.out = out
}
