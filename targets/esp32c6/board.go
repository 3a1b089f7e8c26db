//go:build esp32c6

package main

// Board wiring for the miraeswarm ESP32-C6 controller.
const (
	// mcuName is reported in the boot banner.
	mcuName = "esp32c6"

	// ledPin is the heartbeat LED line on GPIO bank 0.
	ledPin = 0

	// halfPeriodMicros is the heartbeat phase length: 500ms high,
	// 500ms low, a 1Hz blink.
	halfPeriodMicros = 500000
)
