package core

import "testing"

// InitBus is a placeholder and must leave every register untouched.
func TestInitBusIsNoOp(t *testing.T) {
	hw := &traceHW{wordBank: wordBank{enable: 0x0000FF00, out: 0x00000F0F}}

	InitBus()

	if hw.enable != 0x0000FF00 || hw.out != 0x00000F0F {
		t.Errorf("bank changed: enable=%#x out=%#x", hw.enable, hw.out)
	}
	if len(hw.events) != 0 {
		t.Errorf("recorded %d hardware accesses, want 0", len(hw.events))
	}
	if hw.now != 0 {
		t.Errorf("virtual time advanced to %d", hw.now)
	}
}

// Calling the stub repeatedly is as safe as calling it once.
func TestInitBusRepeatable(t *testing.T) {
	for i := 0; i < 3; i++ {
		InitBus()
	}
}
