package protocol

// Field bit widths. Every wire field has a fixed width known at compile time,
// so packet capacity arithmetic is pure constant math.
const (
	MessageTypeBits           = 7  // width of a MessageType tag
	DeviceCommandBits         = 9  // width of a DeviceCommand code
	PacketIndexBits           = 16 // width of a PacketIndex
	DataChangeCommandBits     = 3  // width of a DataChangeCommand tag
	ByteCountFewBits          = 4  // width of a small repeat/skip count
	ByteCountManyBits         = 8  // width of a large repeat/skip count
	ByteValueBits             = 8  // width of a literal byte value
	ByteSequenceContinuesBits = 1  // width of the "more bytes follow" flag
	FirmwareChunkSizeBits     = 7  // width of a firmware chunk size field
	ProgramEventWordBits      = 32 // width of one program event word
	FirmwareWordBits          = 7  // width of one firmware payload word
)

// Field value bounds derived from the widths above.
const (
	ByteCountFewMax  = 1<<ByteCountFewBits - 1  // largest small count (15)
	ByteCountManyMax = 1<<ByteCountManyBits - 1 // largest large count (255)
	FirmwareChunkMax = 1<<FirmwareChunkSizeBits - 1
	MaxTopologyIndex = 63 // largest addressable host→device index
)

// Message-level sizes.
const (
	// NumProgramMessageInts is the fixed number of 32-bit words in a
	// program event message.
	NumProgramMessageInts = 3

	// ProgramEventMessageBits is the total cost of a program event message.
	ProgramEventMessageBits = MessageTypeBits + NumProgramMessageInts*ProgramEventWordBits
)

// Sysex framing. Each transmitted byte after the preamble carries 7 usable
// bits; the preamble and terminator are raw 8-bit MIDI bytes.
const (
	BitsPerPacketByte = 7

	SysexStart byte = 0xF0 // start-of-exclusive status byte
	SysexEnd   byte = 0xF7 // end-of-exclusive status byte

	// NumSysexHeaderBytes is the full header length: preamble plus the
	// device index byte.
	NumSysexHeaderBytes = len(sysexPreamble) + 1
)

// sysexPreamble opens every host→device message: the sysex status byte,
// the three-byte manufacturer ID and the device family byte.
var sysexPreamble = [5]byte{SysexStart, 0x00, 0x21, 0x10, 0x77}

// SysexHeader returns the complete header for the given device index.
// The index must be ≤ MaxTopologyIndex; higher values corrupt the
// addressing scheme and are the caller's contract to exclude.
func SysexHeader(deviceIndex TopologyIndex) [NumSysexHeaderBytes]byte {
	var hdr [NumSysexHeaderBytes]byte
	copy(hdr[:], sysexPreamble[:])
	hdr[len(sysexPreamble)] = byte(deviceIndex) & 0x7F

	return hdr
}
