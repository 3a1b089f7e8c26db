// Heartbeat controller
// Drives the status LED as a square wave so a stuck controller is
// visible at a glance.
package core

// Delayer is the blocking delay between heartbeat phase transitions.
// Implementations wait for at least the requested number of whole
// microseconds and only then return; there is no cancellation path.
// MCU targets busy-wait on a hardware counter, hosted targets sleep.
type Delayer interface {
	DelayMicros(us uint32)
}

// DefaultHalfPeriodMicros is the phase length of the stock heartbeat:
// 500ms high, 500ms low, a 1Hz blink with 50% duty cycle.
const DefaultHalfPeriodMicros uint32 = 500000

// Heartbeat toggles one output line forever: high, delay, low, delay.
// Both phases use the same delay, so the period is twice the half
// period and the duty cycle is 50%.
type Heartbeat struct {
	pin        *OutputPin
	delay      Delayer
	halfPeriod uint32

	cycles  uint32
	onCycle func(cycle uint32)
}

// NewHeartbeat creates a controller for the given line. halfPeriodMicros
// of 0 selects DefaultHalfPeriodMicros.
func NewHeartbeat(pin *OutputPin, delay Delayer, halfPeriodMicros uint32) *Heartbeat {
	if halfPeriodMicros == 0 {
		halfPeriodMicros = DefaultHalfPeriodMicros
	}
	return &Heartbeat{
		pin:        pin,
		delay:      delay,
		halfPeriod: halfPeriodMicros,
	}
}

// SetCycleCallback registers fn to run after each completed cycle with
// the count of cycles finished so far. Pass nil to disable. The
// callback runs on the heartbeat's own control flow, so anything slow
// in it stretches the low phase.
func (h *Heartbeat) SetCycleCallback(fn func(cycle uint32)) {
	h.onCycle = fn
}

// Initialize configures the line as an output and drives it low.
// Safe to call more than once; both register writes are idempotent.
func (h *Heartbeat) Initialize() {
	h.pin.EnableOutput()
	h.pin.Low()
}

// Beat runs one full cycle: high, delay, low, delay.
func (h *Heartbeat) Beat() {
	h.pin.High()
	h.delay.DelayMicros(h.halfPeriod)
	h.pin.Low()
	h.delay.DelayMicros(h.halfPeriod)

	h.cycles++
	if h.onCycle != nil {
		h.onCycle(h.cycles)
	}
}

// Run beats forever. It never returns; call Initialize first.
func (h *Heartbeat) Run() {
	for {
		h.Beat()
	}
}

// Cycles returns the number of completed cycles.
func (h *Heartbeat) Cycles() uint32 {
	return h.cycles
}

// HalfPeriodMicros returns the configured phase length.
func (h *Heartbeat) HalfPeriodMicros() uint32 {
	return h.halfPeriod
}
