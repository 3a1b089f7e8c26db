// Package monitor parses and times the heartbeat console stream.
package monitor

import (
	"fmt"
	"strings"
)

// Beat is one parsed liveness line from the controller console.
type Beat struct {
	Seq uint32 // completed cycle count reported by the firmware
	T   uint64 // firmware timestamp, microseconds since reset
}

// ParseBeat parses a "beat seq=<n> t=<us>" console line. ok is false
// for any other line: banner, boot noise, partial reads.
func ParseBeat(line string) (Beat, bool) {
	var b Beat
	n, err := fmt.Sscanf(strings.TrimSpace(line), "beat seq=%d t=%d", &b.Seq, &b.T)
	if err != nil || n != 2 {
		return Beat{}, false
	}
	return b, true
}

// Tracker accumulates period statistics from successive beats. Feed it
// every parsed beat; it measures the time between consecutive ones and
// keeps count, min, max and mean.
type Tracker struct {
	nominal uint64 // expected period in microseconds

	last     Beat
	haveLast bool

	count  uint64
	sum    uint64
	min    uint64
	max    uint64
	missed uint64
}

// NewTracker creates a tracker expecting the given full period
// (twice the firmware's half period).
func NewTracker(nominalMicros uint64) *Tracker {
	return &Tracker{nominal: nominalMicros}
}

// Observe feeds the next beat and returns the period since the previous
// one. ok is false when no period can be measured: the first beat, a
// beat after a sequence gap (the gap is counted as missed lines), or
// the first beat after the controller timestamp jumped backwards,
// which means a reboot and resets the statistics.
func (tr *Tracker) Observe(b Beat) (period uint64, ok bool) {
	if tr.haveLast && b.T < tr.last.T {
		// Controller rebooted; start over
		*tr = Tracker{nominal: tr.nominal}
	}

	if !tr.haveLast {
		tr.last = b
		tr.haveLast = true
		return 0, false
	}

	period = b.T - tr.last.T
	gap := b.Seq - tr.last.Seq
	tr.last = b

	if gap != 1 {
		// Lost console lines; the measured span covers several
		// cycles and would skew the statistics
		if gap > 1 {
			tr.missed += uint64(gap - 1)
		}
		return 0, false
	}

	tr.count++
	tr.sum += period
	if tr.count == 1 || period < tr.min {
		tr.min = period
	}
	if period > tr.max {
		tr.max = period
	}
	return period, true
}

// Nominal returns the expected period in microseconds.
func (tr *Tracker) Nominal() uint64 { return tr.nominal }

// Count returns the number of measured periods.
func (tr *Tracker) Count() uint64 { return tr.count }

// Min returns the shortest measured period, or 0 before any measurement.
func (tr *Tracker) Min() uint64 { return tr.min }

// Max returns the longest measured period, or 0 before any measurement.
func (tr *Tracker) Max() uint64 { return tr.max }

// Missed returns the number of beat lines lost on the console.
func (tr *Tracker) Missed() uint64 { return tr.missed }

// Mean returns the average measured period, or 0 before any measurement.
func (tr *Tracker) Mean() float64 {
	if tr.count == 0 {
		return 0
	}
	return float64(tr.sum) / float64(tr.count)
}
