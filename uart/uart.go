// Package uart opens a handle to a host serial device. Like the i2c
// package it establishes the channel and hands it to the caller; framing
// and protocol belong to the peripheral code using the port.
package uart

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyAMA0", "/dev/ttyUSB0")
	Device string

	// Baud rate
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a blocking 115200-baud configuration for device.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}

// Port is an open handle to a serial device.
type Port struct {
	port *serial.Port
	cfg  *Config
}

// Open opens the serial device described by cfg. Failures from the
// underlying open are wrapped and propagated unchanged.
func Open(cfg *Config) (*Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("uart config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial device %s: %w", cfg.Device, err)
	}

	return &Port{port: port, cfg: cfg}, nil
}

// Device returns the device path this port was opened on.
func (p *Port) Device() string {
	return p.cfg.Device
}

// Read reads from the serial device.
func (p *Port) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write writes to the serial device.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close releases the serial device.
func (p *Port) Close() error {
	return p.port.Close()
}
