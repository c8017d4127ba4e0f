package interp

import (
	"fmt"

	"go.bug.st/serial"
)

// SerialConfig describes the serial port a command line is interpreted
// on.
type SerialConfig struct {
	// Port is the device path (e.g. "/dev/ttyUSB0").
	Port string
	// BaudRate is the line speed; 115200 when zero.
	BaudRate int
}

// OpenSerial opens the configured serial port and wraps it in a
// ReaderStream, ready to hand to New. The caller owns the returned
// stream and should Close it when done.
func OpenSerial(cfg SerialConfig) (*ReaderStream, error) {
	baud := cfg.BaudRate
	if baud == 0 {
		baud = 115200
	}
	port, err := serial.Open(cfg.Port, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Port, err)
	}
	return NewReaderStream(port), nil
}
