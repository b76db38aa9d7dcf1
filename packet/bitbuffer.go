package packet

import "github.com/gridlink/gridlink/protocol"

// BitBuffer is an append-only store of bit fields with a fixed capacity.
//
// Capacity is expressed in bits: maxPacketBytes × 7, because each transmitted
// sysex byte carries only 7 usable bits. Fields are packed LSB-first into
// successive 7-bit groups, one group per output byte, leaving the high bit of
// every data byte clear as MIDI requires.
//
// The buffer is a pure bit-accounting primitive: it has no failure returns.
// Callers confirm space with HasCapacity before every Write; violating that
// contract is a programming error.
type BitBuffer struct {
	data     []byte
	bits     int // write position in bits, 7 per data byte
	capacity int // maximum position in bits
}

// Checkpoint is an opaque snapshot of a BitBuffer write position. It is
// produced by BitBuffer.Checkpoint and consumed only by BitBuffer.Restore;
// callers never interpret it.
type Checkpoint struct {
	bits int
}

// NewBitBuffer creates an empty buffer that can hold maxPacketBytes output
// bytes, i.e. maxPacketBytes × 7 bits.
func NewBitBuffer(maxPacketBytes int) *BitBuffer {
	return &BitBuffer{
		data:     make([]byte, maxPacketBytes),
		capacity: maxPacketBytes * protocol.BitsPerPacketByte,
	}
}

// HasCapacity reports whether numBits more bits fit without exceeding the
// buffer's fixed maximum. It has no side effects.
func (b *BitBuffer) HasCapacity(numBits int) bool {
	return b.bits+numBits <= b.capacity
}

// Write appends the low width bits of value and advances the write position.
//
// The value must fit in width bits and the caller must have confirmed
// capacity with HasCapacity; Write itself performs no checking.
func (b *BitBuffer) Write(value uint32, width int) {
	for width > 0 {
		idx := b.bits / protocol.BitsPerPacketByte
		off := b.bits % protocol.BitsPerPacketByte

		n := protocol.BitsPerPacketByte - off
		if n > width {
			n = width
		}

		b.data[idx] |= byte(value&(1<<n-1)) << off
		value >>= n
		b.bits += n
		width -= n
	}
}

// WriteAlignedByte stores one raw 8-bit byte at the current position, which
// must be on a 7-bit group boundary. It is used for the sysex framing bytes
// (which carry the MIDI status bit) and consumes one full group of capacity.
func (b *BitBuffer) WriteAlignedByte(value byte) {
	b.data[b.bits/protocol.BitsPerPacketByte] = value
	b.bits += protocol.BitsPerPacketByte
}

// AlignmentBits returns the number of padding bits needed to advance the
// write position to the next 7-bit group boundary (0 if already aligned).
func (b *BitBuffer) AlignmentBits() int {
	off := b.bits % protocol.BitsPerPacketByte
	if off == 0 {
		return 0
	}

	return protocol.BitsPerPacketByte - off
}

// Align pads the write position forward to the next group boundary. The
// caller must have confirmed capacity for AlignmentBits bits.
func (b *BitBuffer) Align() {
	b.bits += b.AlignmentBits()
}

// Checkpoint returns the current write position as an opaque marker.
func (b *BitBuffer) Checkpoint() Checkpoint {
	return Checkpoint{bits: b.bits}
}

// Restore rewinds the write position to a previously saved checkpoint,
// discarding every bit written since. Restoring to a position later than the
// current one is a contract violation and is ignored.
func (b *BitBuffer) Restore(cp Checkpoint) {
	if cp.bits > b.bits {
		return
	}

	// Scrub the discarded bits so later OR-packing writes land on zeroes.
	idx := cp.bits / protocol.BitsPerPacketByte
	off := cp.bits % protocol.BitsPerPacketByte
	used := (b.bits + protocol.BitsPerPacketByte - 1) / protocol.BitsPerPacketByte

	if off != 0 {
		b.data[idx] &= 1<<off - 1
		idx++
	}
	for i := idx; i < used; i++ {
		b.data[i] = 0
	}

	b.bits = cp.bits
}

// BitLen returns the current write position in bits.
func (b *BitBuffer) BitLen() int {
	return b.bits
}

// Len returns the number of whole output bytes currently used, rounding a
// partially filled trailing group up.
func (b *BitBuffer) Len() int {
	return (b.bits + protocol.BitsPerPacketByte - 1) / protocol.BitsPerPacketByte
}

// Bytes returns the packed bytes written so far. The slice borrows the
// buffer's storage: it stays valid for the buffer's lifetime and must not be
// modified by the caller.
func (b *BitBuffer) Bytes() []byte {
	return b.data[:b.Len()]
}
