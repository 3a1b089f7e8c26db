package core

import "testing"

// wordBank is a mock GPIOBank holding the enable and output words,
// with the same set/clear semantics as the hardware registers.
type wordBank struct {
	enable uint32
	out    uint32
}

func (b *wordBank) EnableOutput(mask uint32) { b.enable |= mask }
func (b *wordBank) SetOutput(mask uint32)    { b.out |= mask }
func (b *wordBank) ClearOutput(mask uint32)  { b.out &^= mask }

func TestNewOutputPinBounds(t *testing.T) {
	bank := &wordBank{}

	testCases := []struct {
		name    string
		pin     GPIOPin
		wantErr bool
	}{
		{"line 0", 0, false},
		{"mid bank", 8, false},
		{"last line", 31, false},
		{"first invalid", 32, true},
		{"way out", 255, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pin, err := NewOutputPin(bank, tc.pin)
			if tc.wantErr {
				if err != ErrPinOutOfRange {
					t.Errorf("NewOutputPin(%d) returned %v, want ErrPinOutOfRange", tc.pin, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewOutputPin(%d) failed: %v", tc.pin, err)
			}
			if want := uint32(1) << tc.pin; pin.Mask() != want {
				t.Errorf("Mask() = %#x, want %#x", pin.Mask(), want)
			}
		})
	}
}

func TestOutputPinWrites(t *testing.T) {
	bank := &wordBank{}
	pin, err := NewOutputPin(bank, 5)
	if err != nil {
		t.Fatalf("NewOutputPin failed: %v", err)
	}

	pin.EnableOutput()
	if bank.enable != 1<<5 {
		t.Errorf("enable word = %#x, want %#x", bank.enable, uint32(1<<5))
	}

	pin.High()
	if bank.out != 1<<5 {
		t.Errorf("out word after High = %#x, want %#x", bank.out, uint32(1<<5))
	}

	pin.Low()
	if bank.out != 0 {
		t.Errorf("out word after Low = %#x, want 0", bank.out)
	}
}

// Writes through one pin must not disturb other lines of the bank.
func TestOutputPinNonInterference(t *testing.T) {
	const others = uint32(0xA5A5A5A4) // a spread of lines, none of them line 0

	bank := &wordBank{enable: others, out: others}
	pin, err := NewOutputPin(bank, 0)
	if err != nil {
		t.Fatalf("NewOutputPin failed: %v", err)
	}

	pin.EnableOutput()
	if bank.enable != others|1 {
		t.Errorf("enable word = %#x, want %#x", bank.enable, others|1)
	}

	pin.High()
	if bank.out != others|1 {
		t.Errorf("out word after High = %#x, want %#x", bank.out, others|1)
	}

	pin.Low()
	if bank.out != others {
		t.Errorf("out word after Low = %#x, want %#x", bank.out, others)
	}

	if bank.enable != others|1 {
		t.Errorf("enable word changed by level writes: %#x", bank.enable)
	}
}
