package firmware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack_RoundTrip(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			payload := testPayload()

			container, err := Pack(payload, ct)
			require.NoError(t, err)

			img, err := Unpack(container)
			require.NoError(t, err)
			require.Equal(t, payload, img.Data)
			assert.Equal(t, ImageID(payload), img.ID)
		})
	}
}

func TestUnpack_Truncated(t *testing.T) {
	_, err := Unpack([]byte{'G', 'L'})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated")
}

func TestUnpack_BadMagic(t *testing.T) {
	container, err := Pack(testPayload(), CompressionNone)
	require.NoError(t, err)
	container[0] = 'X'

	_, err = Unpack(container)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magic")
}

func TestUnpack_BadVersion(t *testing.T) {
	container, err := Pack(testPayload(), CompressionNone)
	require.NoError(t, err)
	container[4] = 99

	_, err = Unpack(container)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestUnpack_CorruptedPayload(t *testing.T) {
	container, err := Pack(testPayload(), CompressionNone)
	require.NoError(t, err)

	// Flip a payload byte: the recorded hash no longer matches.
	container[len(container)-1] ^= 0x01

	_, err = Unpack(container)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash mismatch")
}

func TestPack_UnknownCompression(t *testing.T) {
	_, err := Pack(testPayload(), CompressionType(0x7F))
	require.Error(t, err)
}
