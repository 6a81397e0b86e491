package hostlink

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// DefaultBaud is the speed of the serial link unless another is chosen.
const DefaultBaud = 9600

// OpenSerial opens the serial port for the link. The format is 8N1.
func OpenSerial(ctx Context, name string, baud int, compatible bool) (*Link, error) {
	if baud == 0 {
		baud = DefaultBaud
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("hostlink: %w", err)
	}

	l := newLink(ctx, port, port, compatible)
	l.closer = port
	l.idleEOF = true
	l.start()
	return l, nil
}
