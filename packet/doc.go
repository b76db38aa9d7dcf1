// Package packet builds single host→device sysex messages bit by bit.
//
// A message is assembled by one Builder backed by one BitBuffer. The buffer
// packs heterogeneous fixed-width fields into 7-bit groups (every transmitted
// sysex byte carries 7 usable bits), tracks its write position at bit
// granularity, and supports checkpoint/restore so that multi-field commands
// can be rolled back as a unit.
//
// Every command on the Builder is transactional: it computes its exact bit
// cost up front, refuses (returning false) when the packet cannot hold it,
// and otherwise writes all of its fields. A failed command never leaves a
// partially written field behind, so the caller is free to react by shrinking
// the batch, splitting across packets, or dropping the command.
//
// Typical usage:
//
//	b := packet.NewBuilder(64)
//	b.WriteSysexHeader(deviceIndex)
//	if !b.DeviceControlMessage(protocol.Ping) {
//	    // packet full: send what fits and start another
//	}
//	b.WriteSysexFooter()
//	port.Send(b.Bytes())
package packet
