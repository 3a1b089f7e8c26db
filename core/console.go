package core

// Console line formats shared by the firmware targets and the host
// monitor. Targets only ever write these lines; the monitor parses
// them back.

// Version is the firmware version announced in the boot banner.
const Version = "0.0.1"

// FormatBanner builds the one-line boot banner, e.g.
//
//	miraeswarm 0.0.1 mcu=esp32c6 clk=16000000
func FormatBanner(mcu string, clockHz uint32) string {
	return "miraeswarm " + Version + " mcu=" + mcu + " clk=" + utoa(clockHz)
}

// FormatBeat builds the per-cycle liveness line, e.g.
//
//	beat seq=12 t=12000204
//
// seq counts completed cycles, t is microseconds since boot.
func FormatBeat(seq uint32, tMicros uint64) string {
	return "beat seq=" + utoa(seq) + " t=" + utoa64(tMicros)
}
