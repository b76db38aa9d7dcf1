package protocol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageType_String(t *testing.T) {
	assert.Equal(t, "DeviceCommand", DeviceCommandMessage.String())
	assert.Equal(t, "SharedDataChange", SharedDataChange.String())
	assert.Equal(t, "ProgramEvent", ProgramEventMessage.String())
	assert.Equal(t, "FirmwareUpdate", FirmwareUpdatePacket.String())
	assert.Equal(t, "Unknown", MessageType(0x7F).String())
}

func TestDeviceCommand_String(t *testing.T) {
	assert.Equal(t, "BeginAPIMode", BeginAPIMode.String())
	assert.Equal(t, "Ping", Ping.String())
	assert.Equal(t, "EndAPIMode", EndAPIMode.String())
	assert.Equal(t, "BlockReset", BlockReset.String())
	assert.Equal(t, "Unknown", DeviceCommand(0x1FF).String())

	// The commands format cleanly as %s values in logs.
	assert.Equal(t, "Ping", fmt.Sprintf("%s", Ping))
}

func TestDataChangeCommand_String(t *testing.T) {
	tests := []struct {
		cmd  DataChangeCommand
		want string
	}{
		{EndOfPacket, "EndOfPacket"},
		{EndOfChanges, "EndOfChanges"},
		{SkipBytesFew, "SkipBytesFew"},
		{SkipBytesMany, "SkipBytesMany"},
		{SetSequenceOfBytes, "SetSequenceOfBytes"},
		{SetFewBytesWithValue, "SetFewBytesWithValue"},
		{SetFewBytesWithLastValue, "SetFewBytesWithLastValue"},
		{SetManyBytesWithValue, "SetManyBytesWithValue"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestFieldBounds(t *testing.T) {
	// The count maxima are derived from the field widths; the data-change
	// command space is exactly saturated by the eight commands.
	assert.Equal(t, 15, ByteCountFewMax)
	assert.Equal(t, 255, ByteCountManyMax)
	assert.Equal(t, 127, FirmwareChunkMax)
	assert.Equal(t, 103, ProgramEventMessageBits)
	assert.Less(t, int(SetManyBytesWithValue), 1<<DataChangeCommandBits)
}

func TestSysexHeader(t *testing.T) {
	hdr := SysexHeader(5)

	require.Equal(t, NumSysexHeaderBytes, len(hdr))
	assert.Equal(t, SysexStart, hdr[0])
	assert.Equal(t, byte(5), hdr[NumSysexHeaderBytes-1])

	// Every header byte after the status byte stays in the 7-bit range.
	for _, b := range hdr[1:] {
		assert.Zero(t, b&0x80)
	}
}
