// Package gridlink builds host→device control messages for grid controller
// peripherals addressed over MIDI system-exclusive framing.
//
// The wire format packs heterogeneous fixed-width fields into 7-bit groups,
// one group per transmitted byte, because sysex data bytes may not use the
// high bit. Message construction is transactional at bit granularity: every
// command either fits completely into the packet or leaves it untouched, so
// callers can fill a packet greedily and split the remainder into the next
// one.
//
// # Core Packages
//
//   - packet: the bit-granular BitBuffer and the transactional Builder
//   - protocol: field widths, message tags and sysex framing constants
//   - firmware: compressed image containers and update-packet chunking
//   - topology: device serial → 7-bit address registry
//   - transport: one-way ports (io.Writer, serial) for finished messages
//
// # Basic Usage
//
// Building and sending a control message:
//
//	p := gridlink.NewPacket(64, deviceIndex)
//	if !p.DeviceControlMessage(protocol.Ping) {
//	    // packet full
//	}
//	p.WriteSysexFooter()
//	port.Send(p.Bytes())
//
// Streaming an incremental data change:
//
//	p := gridlink.NewPacket(200, deviceIndex)
//	p.BeginDataChanges(packetIndex)
//	p.SkipBytes(96)
//	p.SetRepeatedBytes(0x40, 0x40, 24)
//	p.EndDataChanges(true)
//	p.WriteSysexFooter()
//
// This package provides convenient top-level wrappers around the packet
// package; use the subpackages directly for fine-grained control.
package gridlink

import (
	"github.com/gridlink/gridlink/internal/hash"
	"github.com/gridlink/gridlink/packet"
	"github.com/gridlink/gridlink/protocol"
)

// DefaultPacketBytes is a packet size that suits every message kind,
// including maximal firmware chunks.
const DefaultPacketBytes = 200

// NewPacket creates a packet builder of the given byte capacity with the
// sysex header for deviceIndex already written. maxPacketBytes must be
// greater than 10 and deviceIndex at most protocol.MaxTopologyIndex.
func NewPacket(maxPacketBytes int, deviceIndex protocol.TopologyIndex) *packet.Builder {
	p := packet.NewBuilder(maxPacketBytes)
	p.WriteSysexHeader(deviceIndex)

	return p
}

// BuildDeviceControl builds one complete framed message carrying a single
// device command. It returns nil when the command does not fit, which only
// happens for absurdly small packet sizes.
func BuildDeviceControl(maxPacketBytes int, deviceIndex protocol.TopologyIndex, command protocol.DeviceCommand) []byte {
	p := NewPacket(maxPacketBytes, deviceIndex)
	if !p.DeviceControlMessage(command) || !p.WriteSysexFooter() {
		return nil
	}

	return p.Bytes()
}

// DeviceID converts a device serial number to its 64-bit hash identifier,
// the same identifier the topology registry uses.
func DeviceID(serial string) uint64 {
	return hash.ID(serial)
}
