//go:build linux

// Package i2c opens a handle to a Linux I2C bus character device.
// Transfer operations live with the peripheral drivers built on top of
// this handle; this package only establishes and releases the bus.
package i2c

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// I2C is an open handle to an I2C bus. A handle holds the bus device
// open until Close is called.
type I2C struct {
	fd  int
	bus uint8
}

// New opens the I2C bus character device for the given bus number
// (e.g. bus 1 for /dev/i2c-1 on a Raspberry Pi). Any failure from the
// underlying open is wrapped and returned unchanged in meaning; callers
// use errors.Is/errors.As to inspect the cause.
func New(bus uint8) (*I2C, error) {
	path := devicePath(bus)
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus device %s: %w", path, err)
	}
	return &I2C{fd: fd, bus: bus}, nil
}

// Bus returns the bus number this handle was opened on.
func (i *I2C) Bus() uint8 {
	return i.bus
}

// Close releases the bus device.
func (i *I2C) Close() error {
	if err := unix.Close(i.fd); err != nil {
		return fmt.Errorf("failed to close I2C bus %d: %w", i.bus, err)
	}
	return nil
}

// devicePath returns the character device path for a bus number.
func devicePath(bus uint8) string {
	return fmt.Sprintf("/dev/i2c-%d", bus)
}
