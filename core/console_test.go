package core

import "testing"

func TestFormatBanner(t *testing.T) {
	got := FormatBanner("esp32c6", 16000000)
	want := "miraeswarm " + Version + " mcu=esp32c6 clk=16000000"
	if got != want {
		t.Errorf("FormatBanner = %q, want %q", got, want)
	}
}

func TestFormatBeat(t *testing.T) {
	testCases := []struct {
		name   string
		seq    uint32
		micros uint64
		want   string
	}{
		{"first cycle", 1, 1000000, "beat seq=1 t=1000000"},
		{"later cycle", 42, 42000123, "beat seq=42 t=42000123"},
		{"zero time", 0, 0, "beat seq=0 t=0"},
		{"days of uptime", 100000, 100000000000, "beat seq=100000 t=100000000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatBeat(tc.seq, tc.micros); got != tc.want {
				t.Errorf("FormatBeat(%d, %d) = %q, want %q", tc.seq, tc.micros, got, tc.want)
			}
		})
	}
}
