package transport

import (
	"fmt"

	"github.com/tarm/serial"
)

// MIDIBaud is the classic DIN MIDI line rate. Devices attached through a
// USB-serial bridge usually accept higher rates; pass those explicitly to
// OpenSerial.
const MIDIBaud = 31250

// SerialPort sends sysex messages over a serial device.
type SerialPort struct {
	port *serial.Port
}

var _ Port = (*SerialPort)(nil)

// OpenSerial opens the named serial device at the given baud rate
// (MIDIBaud for a DIN MIDI line).
func OpenSerial(name string, baud int) (*SerialPort, error) {
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("transport: open serial %s: %w", name, err)
	}

	return &SerialPort{port: port}, nil
}

// Send transmits one framed message over the serial line.
func (p *SerialPort) Send(msg []byte) error {
	if !IsCompleteSysex(msg) {
		return fmt.Errorf("transport: message is not a complete sysex frame")
	}

	if _, err := p.port.Write(msg); err != nil {
		return fmt.Errorf("transport: serial write failed: %w", err)
	}

	return nil
}

// Close closes the serial device.
func (p *SerialPort) Close() error {
	return p.port.Close()
}
