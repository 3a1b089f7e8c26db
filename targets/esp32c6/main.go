//go:build esp32c6

package main

import (
	"github.com/ScoobyXD/miraeswarm/core"
)

func main() {
	InitSystimer()

	// Bus bring-up placeholder; stays empty until the sensor bus is wired
	core.InitBus()

	bank := NewC6GPIOBank()
	led, err := core.NewOutputPin(bank, ledPin)
	if err != nil {
		return
	}

	hb := core.NewHeartbeat(led, NewC6Delay(), halfPeriodMicros)
	hb.Initialize()

	ConsolePrintln(core.FormatBanner(mcuName, systimerHz))
	hb.SetCycleCallback(func(cycle uint32) {
		ConsolePrintln(core.FormatBeat(cycle, NowMicros()))
	})

	hb.Run()
}
