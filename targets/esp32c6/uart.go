//go:build esp32c6

package main

import (
	"runtime/volatile"
	"unsafe"
)

// ESP32-C6 UART0. The ROM bootloader configures the console pins for
// 115200-8N1; the firmware only ever writes the TX FIFO.
const (
	uart0Base   = 0x60000000
	uart0FIFO   = uart0Base + 0x00 // TX/RX FIFO window
	uart0STATUS = uart0Base + 0x1C // FIFO counts and line state

	uartTxCntShift  = 16 // STATUS bits 25:16 hold the TX FIFO fill level
	uartTxCntMask   = 0x3FF
	uartTxFifoDepth = 128
)

var (
	uart0Fifo   = (*volatile.Register32)(unsafe.Pointer(uintptr(uart0FIFO)))
	uart0Status = (*volatile.Register32)(unsafe.Pointer(uintptr(uart0STATUS)))
)

func txFifoCount() uint32 {
	return (uart0Status.Get() >> uartTxCntShift) & uartTxCntMask
}

// consoleWriteByte blocks until the TX FIFO has room, then queues b.
func consoleWriteByte(b byte) {
	for txFifoCount() >= uartTxFifoDepth {
	}
	uart0Fifo.Set(uint32(b))
}

// ConsolePrint writes s to the ROM console UART.
func ConsolePrint(s string) {
	for i := 0; i < len(s); i++ {
		consoleWriteByte(s[i])
	}
}

// ConsolePrintln writes s followed by CRLF.
func ConsolePrintln(s string) {
	ConsolePrint(s)
	ConsolePrint("\r\n")
}
