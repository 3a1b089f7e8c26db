package core

// Decimal formatting without fmt or strconv, to keep the firmware
// image small. Console lines are the only consumer.

// utoa converts an unsigned integer to its decimal representation
func utoa(n uint32) string {
	return utoa64(uint64(n))
}

// utoa64 converts a 64-bit unsigned integer to its decimal representation
func utoa64(n uint64) string {
	if n == 0 {
		return "0"
	}

	// Build from right to left; 20 digits cover the uint64 range
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[pos:])
}
