// Package serial opens the console UART of a miraeswarm controller.
package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port represents a serial connection to the controller console: a
// line stream to read and close. The console is transmit-only on the
// controller side, so there is no write half. The interface keeps the
// monitor testable against an in-memory implementation.
type Port interface {
	io.ReadCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g. "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate; the ROM console runs 115200
	Baud int

	// Read timeout in milliseconds. 0 blocks, which is what the
	// line-oriented monitor wants.
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the ROM console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0,
	}
}

// NativePort wraps the tarm/serial implementation
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens the device described by cfg.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	serialConfig := &serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	}

	port, err := serial.OpenPort(serialConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{
		port: port,
		cfg:  cfg,
	}, nil
}

// Read reads data from the serial port
func (p *NativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Close closes the serial port
func (p *NativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}
