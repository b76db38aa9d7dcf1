// Package transport moves finished sysex messages to a device.
//
// The ports here are deliberately one-way and unreliable: they push fully
// framed bytes out and report I/O errors, nothing more. Retransmission,
// acknowledgement and reading device→host traffic belong to higher layers.
package transport

import (
	"fmt"
	"io"

	"github.com/gridlink/gridlink/protocol"
)

// Port sends one complete sysex message at a time.
type Port interface {
	// Send transmits one framed message. The message must start with the
	// sysex status byte and end with the terminator.
	Send(msg []byte) error

	// Close releases the underlying device.
	Close() error
}

// IsCompleteSysex reports whether msg is a fully framed sysex message:
// non-empty, starting with the start-of-exclusive byte and ending with the
// terminator.
func IsCompleteSysex(msg []byte) bool {
	return len(msg) >= 2 && msg[0] == protocol.SysexStart && msg[len(msg)-1] == protocol.SysexEnd
}

// WriterPort adapts any io.Writer into a Port. It is the usual way to feed
// an OS MIDI device node or a capture file.
type WriterPort struct {
	w io.Writer
}

var _ Port = (*WriterPort)(nil)

// NewWriterPort creates a Port writing to w. If w is an io.Closer, Close
// closes it.
func NewWriterPort(w io.Writer) *WriterPort {
	return &WriterPort{w: w}
}

// Send writes the framed message to the underlying writer.
func (p *WriterPort) Send(msg []byte) error {
	if !IsCompleteSysex(msg) {
		return fmt.Errorf("transport: message is not a complete sysex frame")
	}

	if _, err := p.w.Write(msg); err != nil {
		return fmt.Errorf("transport: write failed: %w", err)
	}

	return nil
}

// Close closes the underlying writer when it supports closing.
func (p *WriterPort) Close() error {
	if c, ok := p.w.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
