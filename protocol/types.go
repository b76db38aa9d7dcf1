package protocol

type (
	// MessageType tags the kind of a host→device message.
	MessageType uint8

	// DeviceCommand is a 9-bit device command code carried by a
	// device-control message.
	DeviceCommand uint16

	// DataChangeCommand selects one sub-command inside a shared-data-change
	// block.
	DataChangeCommand uint8

	// PacketIndex is the 16-bit sequence index of a shared-data-change packet.
	PacketIndex uint16

	// TopologyIndex addresses one device on the sysex ring. Valid host→device
	// indices are 0-63; bit 6 marks the device→host direction and must never
	// appear in an outgoing header.
	TopologyIndex uint8
)

const (
	DeviceCommandMessage MessageType = 0x01 // DeviceCommandMessage carries one DeviceCommand.
	SharedDataChange     MessageType = 0x02 // SharedDataChange opens a data-change block.
	ProgramEventMessage  MessageType = 0x03 // ProgramEventMessage carries program event words.
	FirmwareUpdatePacket MessageType = 0x04 // FirmwareUpdatePacket carries one firmware chunk.
)

const (
	BeginAPIMode DeviceCommand = 0x00 // BeginAPIMode switches the device into API mode.
	Ping         DeviceCommand = 0x01 // Ping requests a liveness response.
	EndAPIMode   DeviceCommand = 0x02 // EndAPIMode returns the device to standalone mode.
	BlockReset   DeviceCommand = 0x03 // BlockReset reboots the device.
)

const (
	EndOfPacket              DataChangeCommand = 0 // EndOfPacket closes a packet with more changes pending.
	EndOfChanges             DataChangeCommand = 1 // EndOfChanges closes the final packet of a change set.
	SkipBytesFew             DataChangeCommand = 2 // SkipBytesFew advances the cursor by a 4-bit count.
	SkipBytesMany            DataChangeCommand = 3 // SkipBytesMany advances the cursor by an 8-bit count.
	SetSequenceOfBytes       DataChangeCommand = 4 // SetSequenceOfBytes writes distinct byte values verbatim.
	SetFewBytesWithValue     DataChangeCommand = 5 // SetFewBytesWithValue repeats one value, 4-bit count.
	SetFewBytesWithLastValue DataChangeCommand = 6 // SetFewBytesWithLastValue repeats the previous value, 4-bit count.
	SetManyBytesWithValue    DataChangeCommand = 7 // SetManyBytesWithValue repeats one value, 8-bit count.
)

func (m MessageType) String() string {
	switch m {
	case DeviceCommandMessage:
		return "DeviceCommand"
	case SharedDataChange:
		return "SharedDataChange"
	case ProgramEventMessage:
		return "ProgramEvent"
	case FirmwareUpdatePacket:
		return "FirmwareUpdate"
	default:
		return "Unknown"
	}
}

func (c DeviceCommand) String() string {
	switch c {
	case BeginAPIMode:
		return "BeginAPIMode"
	case Ping:
		return "Ping"
	case EndAPIMode:
		return "EndAPIMode"
	case BlockReset:
		return "BlockReset"
	default:
		return "Unknown"
	}
}

func (c DataChangeCommand) String() string {
	switch c {
	case EndOfPacket:
		return "EndOfPacket"
	case EndOfChanges:
		return "EndOfChanges"
	case SkipBytesFew:
		return "SkipBytesFew"
	case SkipBytesMany:
		return "SkipBytesMany"
	case SetSequenceOfBytes:
		return "SetSequenceOfBytes"
	case SetFewBytesWithValue:
		return "SetFewBytesWithValue"
	case SetFewBytesWithLastValue:
		return "SetFewBytesWithLastValue"
	case SetManyBytesWithValue:
		return "SetManyBytesWithValue"
	default:
		return "Unknown"
	}
}
