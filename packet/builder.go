package packet

import "github.com/gridlink/gridlink/protocol"

// Builder assembles one outgoing sysex message for a single device.
//
// A Builder is created per message, used by one goroutine, and read out once
// building is done; concurrent producers each use their own Builder. The
// caller writes the header first, then any sequence of commands, then the
// footer (unless the transport frames the terminator itself).
//
// Every command method returns false, leaving the packet bit-for-bit
// unchanged, when its fields would not fit in the remaining capacity.
// Insufficient capacity is the only failure mode; out-of-range arguments
// (device index ≥ 64, oversized firmware chunks) are caller contract
// violations, not recoverable errors.
type Builder struct {
	buf *BitBuffer
}

// NewBuilder creates a Builder for a packet of at most maxPacketBytes bytes.
// Packets that carry the sysex header need maxPacketBytes > 10 to leave room
// for a sensible message.
func NewBuilder(maxPacketBytes int) *Builder {
	return &Builder{buf: NewBitBuffer(maxPacketBytes)}
}

// Bytes returns the finished byte sequence. The slice borrows the builder's
// storage and stays valid for the builder's lifetime; the transport layer
// copies or transmits it without taking ownership.
func (p *Builder) Bytes() []byte {
	return p.buf.Bytes()
}

// Size returns the finished message length in bytes.
func (p *Builder) Size() int {
	return p.buf.Len()
}

// WriteSysexHeader writes the vendor preamble and the device index byte.
// It must be the first write into an empty packet. The index must be
// ≤ protocol.MaxTopologyIndex; bit 6 belongs to the device→host direction
// and must not be set.
func (p *Builder) WriteSysexHeader(deviceIndex protocol.TopologyIndex) {
	hdr := protocol.SysexHeader(deviceIndex)
	for _, b := range hdr {
		p.buf.WriteAlignedByte(b)
	}
}

// WriteSysexFooter pads the packet to a whole byte and appends the sysex
// terminator. It returns false, leaving the packet unchanged, if the
// terminator does not fit.
func (p *Builder) WriteSysexFooter() bool {
	if !p.buf.HasCapacity(p.buf.AlignmentBits() + protocol.BitsPerPacketByte) {
		return false
	}

	p.buf.Align()
	p.buf.WriteAlignedByte(protocol.SysexEnd)

	return true
}

// DeviceControlMessage writes a device-command message carrying one command
// code. Returns false if the tag and code do not fit.
func (p *Builder) DeviceControlMessage(command protocol.DeviceCommand) bool {
	if !p.buf.HasCapacity(protocol.MessageTypeBits + protocol.DeviceCommandBits) {
		return false
	}

	p.writeMessageType(protocol.DeviceCommandMessage)
	p.buf.Write(uint32(command), protocol.DeviceCommandBits)

	return true
}

// BeginDataChanges opens a shared-data-change block with the given packet
// index. The capacity check reserves room for one change command as well, so
// an opened block can always at least be closed. Returns false if it does
// not fit.
func (p *Builder) BeginDataChanges(packetIndex protocol.PacketIndex) bool {
	if !p.buf.HasCapacity(protocol.MessageTypeBits + protocol.PacketIndexBits + protocol.DataChangeCommandBits) {
		return false
	}

	p.writeMessageType(protocol.SharedDataChange)
	p.buf.Write(uint32(packetIndex), protocol.PacketIndexBits)

	return true
}

// EndDataChanges closes a data-change block: endOfChanges when this packet is
// the last of the change set, endOfPacket when more packets follow.
func (p *Builder) EndDataChanges(isLastChange bool) bool {
	if !p.buf.HasCapacity(protocol.DataChangeCommandBits) {
		return false
	}

	if isLastChange {
		p.writeDataChange(protocol.EndOfChanges)
	} else {
		p.writeDataChange(protocol.EndOfPacket)
	}

	return true
}

// SkipBytes advances the device's write cursor by numToSkip bytes without
// transmitting payload, using the smallest adequate encoding. Counts beyond
// the large-count field are split into maximal skip-many commands plus a
// remainder; the whole sequence is atomic, rolling back to the pre-call
// position if any piece fails to fit. numToSkip ≤ 0 succeeds and writes
// nothing.
func (p *Builder) SkipBytes(numToSkip int) bool {
	if numToSkip <= 0 {
		return true
	}

	state := p.buf.Checkpoint()

	for numToSkip > protocol.ByteCountManyMax {
		if !p.SkipBytes(protocol.ByteCountManyMax) {
			p.buf.Restore(state)
			return false
		}

		numToSkip -= protocol.ByteCountManyMax
	}

	if numToSkip > protocol.ByteCountFewMax {
		if !p.buf.HasCapacity(protocol.DataChangeCommandBits*2 + protocol.ByteCountManyBits) {
			p.buf.Restore(state)
			return false
		}

		p.writeDataChange(protocol.SkipBytesMany)
		p.buf.Write(uint32(numToSkip), protocol.ByteCountManyBits)

		return true
	}

	if !p.buf.HasCapacity(protocol.DataChangeCommandBits*2 + protocol.ByteCountFewBits) {
		p.buf.Restore(state)
		return false
	}

	p.writeDataChange(protocol.SkipBytesFew)
	p.buf.Write(uint32(numToSkip), protocol.ByteCountFewBits)

	return true
}

// SetMultipleBytes writes a sequence of distinct byte values verbatim: each
// value is followed by a continuation flag that is 0 on the last element.
// An empty slice succeeds and writes nothing. Returns false, with no bytes
// written, if the whole sequence does not fit.
func (p *Builder) SetMultipleBytes(values []byte) bool {
	num := len(values)
	if num == 0 {
		return true
	}

	cost := protocol.DataChangeCommandBits*2 + num*(protocol.ByteSequenceContinuesBits+protocol.ByteValueBits)
	if !p.buf.HasCapacity(cost) {
		return false
	}

	p.writeDataChange(protocol.SetSequenceOfBytes)

	for i, v := range values {
		p.buf.Write(uint32(v), protocol.ByteValueBits)

		var more uint32
		if i < num-1 {
			more = 1
		}
		p.buf.Write(more, protocol.ByteSequenceContinuesBits)
	}

	return true
}

// SetRepeatedBytes run-length encodes num copies of value, where lastValue
// names the byte the device saw last. When value and lastValue agree and the
// count is small, the value field is omitted entirely.
//
// Encoding tiers, most compact first:
//   - num == 1: a plain one-byte sequence is cheaper than any run command.
//   - num beyond the large count: a maximal-size run followed by the
//     remainder, as one atomic operation.
//   - num beyond the small count: set-many, which always transmits the
//     value (the last-value form exists only at small-count granularity).
//   - value == lastValue: set-few with the value implied.
//   - otherwise: set-few with an explicit value field.
//
// num ≤ 0 succeeds and writes nothing. On any failure the packet is exactly
// as it was before the call.
func (p *Builder) SetRepeatedBytes(value, lastValue byte, num int) bool {
	if num <= 0 {
		return true
	}

	if num == 1 {
		// A single byte is a more compact message as a plain sequence.
		return p.SetMultipleBytes([]byte{value})
	}

	state := p.buf.Checkpoint()

	if num > protocol.ByteCountManyMax {
		if !p.SetRepeatedBytes(value, value, protocol.ByteCountManyMax) {
			p.buf.Restore(state)
			return false
		}

		if !p.SetRepeatedBytes(value, lastValue, num-protocol.ByteCountManyMax) {
			p.buf.Restore(state)
			return false
		}

		return true
	}

	if num > protocol.ByteCountFewMax {
		if !p.buf.HasCapacity(protocol.DataChangeCommandBits*2 + protocol.ByteCountManyBits + protocol.ByteValueBits) {
			p.buf.Restore(state)
			return false
		}

		p.writeDataChange(protocol.SetManyBytesWithValue)
		p.buf.Write(uint32(num), protocol.ByteCountManyBits)
		p.buf.Write(uint32(value), protocol.ByteValueBits)

		return true
	}

	if value == lastValue {
		if !p.buf.HasCapacity(protocol.DataChangeCommandBits*2 + protocol.ByteCountFewBits) {
			p.buf.Restore(state)
			return false
		}

		p.writeDataChange(protocol.SetFewBytesWithLastValue)
		p.buf.Write(uint32(num), protocol.ByteCountFewBits)

		return true
	}

	if !p.buf.HasCapacity(protocol.DataChangeCommandBits*2 + protocol.ByteCountFewBits + protocol.ByteValueBits) {
		p.buf.Restore(state)
		return false
	}

	p.writeDataChange(protocol.SetFewBytesWithValue)
	p.buf.Write(uint32(num), protocol.ByteCountFewBits)
	p.buf.Write(uint32(value), protocol.ByteValueBits)

	return true
}

// AddProgramEventMessage writes a program event: the message tag followed by
// protocol.NumProgramMessageInts 32-bit words copied verbatim from the
// caller's payload. The slice must hold at least that many words.
func (p *Builder) AddProgramEventMessage(messageData []int32) bool {
	if !p.buf.HasCapacity(protocol.ProgramEventMessageBits) {
		return false
	}

	p.writeMessageType(protocol.ProgramEventMessage)

	for i := 0; i < protocol.NumProgramMessageInts; i++ {
		p.buf.Write(uint32(messageData[i]), protocol.ProgramEventWordBits)
	}

	return true
}

// AddFirmwareUpdatePacket writes one firmware chunk: the message tag, the
// chunk size, then each payload byte as a 7-bit word. The chunk length must
// be ≤ protocol.FirmwareChunkMax and every byte must fit in 7 bits (caller
// contract).
func (p *Builder) AddFirmwareUpdatePacket(packetData []byte) bool {
	size := len(packetData)
	if !p.buf.HasCapacity(protocol.MessageTypeBits + protocol.FirmwareChunkSizeBits + protocol.FirmwareWordBits*size) {
		return false
	}

	p.writeMessageType(protocol.FirmwareUpdatePacket)
	p.buf.Write(uint32(size), protocol.FirmwareChunkSizeBits)

	for _, v := range packetData {
		p.buf.Write(uint32(v), protocol.FirmwareWordBits)
	}

	return true
}

func (p *Builder) writeMessageType(t protocol.MessageType) {
	p.buf.Write(uint32(t), protocol.MessageTypeBits)
}

func (p *Builder) writeDataChange(c protocol.DataChangeCommand) {
	p.buf.Write(uint32(c), protocol.DataChangeCommandBits)
}
