package sensor

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/tarm/serial"
)

// DefaultBaud is the sensor's line speed.
const DefaultBaud = 9600

// Open opens the serial port the game talks to. An empty dev tries the
// platform's usual ports in turn; baud 0 uses DefaultBaud.
func Open(dev string, baud int) (io.ReadWriteCloser, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}

	var devices []string
	if dev != "" {
		devices = append(devices, dev)
	} else {
		switch runtime.GOOS {
		case "windows":
			devices = append(devices, "COM3")
		case "linux":
			devices = append(devices, "/dev/ttyUSB0", "/dev/ttyUSB1")
		}
	}
	if len(devices) == 0 {
		return nil, errors.New("sensor: no serial device specified")
	}
	var firstErr error
	for _, dev := range devices {
		c := &serial.Config{Name: dev, Baud: baud}
		s, err := serial.OpenPort(c)
		if err == nil {
			return s, nil
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("sensor: open %s: %w", dev, err)
		}
	}
	return nil, firstErr
}
