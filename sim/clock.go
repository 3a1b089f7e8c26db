package sim

// Clock is a virtual microsecond clock. DelayMicros advances it by
// exactly the requested amount, so timing properties can be asserted
// cycle by cycle instead of waited out in wall time.
type Clock struct {
	now uint64
}

// NewClock returns a clock at t=0.
func NewClock() *Clock {
	return &Clock{}
}

// DelayMicros advances the clock by us microseconds. It fulfills the
// blocking delay contract in zero wall time.
func (c *Clock) DelayMicros(us uint32) {
	c.now += uint64(us)
}

// Now returns the current virtual time in microseconds.
func (c *Clock) Now() uint64 {
	return c.now
}
