// Heartbeat on a Raspberry Pi bench rig. Runs the same controller as
// the MCU targets, with the GPIO bank over periph.io and the delay on
// the OS scheduler.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ScoobyXD/miraeswarm/core"
)

var (
	pin        = flag.Uint("pin", 21, "BCM line number of the heartbeat LED")
	halfPeriod = flag.Uint("half-period", 500000, "Phase length in microseconds")
	quiet      = flag.Bool("quiet", false, "Suppress per-beat log lines")
)

// sleepDelay implements the blocking microsecond delay with the OS
// scheduler: Sleep blocks the calling goroutine for at least the
// requested time, the hosted equivalent of the MCU busy-wait.
type sleepDelay struct{}

func (sleepDelay) DelayMicros(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

// newBeatLogger returns the logger for beat lines. They are the
// program's output, not diagnostics, and go to stdout so they can be
// piped into the monitor tooling.
func newBeatLogger() *log.Logger {
	return log.New(os.Stdout, "", log.LstdFlags)
}

func main() {
	flag.Parse()

	core.InitBus()

	bank, err := NewPiBank(uint32(*pin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	led, err := core.NewOutputPin(bank, core.GPIOPin(*pin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hb := core.NewHeartbeat(led, sleepDelay{}, uint32(*halfPeriod))
	hb.Initialize()

	logger := newBeatLogger()
	logger.Printf("miraeswarm %s heartbeat on GPIO%d, half period %dus", core.Version, *pin, *halfPeriod)

	if !*quiet {
		start := time.Now()
		hb.SetCycleCallback(func(cycle uint32) {
			logger.Println(core.FormatBeat(cycle, uint64(time.Since(start).Microseconds())))
		})
	}

	hb.Run()
}
