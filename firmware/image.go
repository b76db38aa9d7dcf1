package firmware

import (
	"encoding/binary"
	"fmt"

	"github.com/gridlink/gridlink/internal/hash"
)

// Container layout:
//
//	offset  size  field
//	0       4     magic "GLFW"
//	4       1     container version (currently 1)
//	5       1     compression type
//	6       2     reserved, must be zero
//	8       4     raw payload size (little-endian)
//	12      8     xxHash64 of the raw payload (little-endian)
//	20      -     compressed payload
const (
	containerVersion  = 1
	containerHeadSize = 20
)

var containerMagic = [4]byte{'G', 'L', 'F', 'W'}

// Image is an unpacked firmware image ready for chunking.
type Image struct {
	// ID is the xxHash64 of the raw payload, used to identify an image
	// across hosts and to de-duplicate repeated updates.
	ID uint64

	// Data is the raw firmware payload.
	Data []byte
}

// ImageID computes the identifier Pack and Unpack assign to a raw payload.
func ImageID(payload []byte) uint64 {
	return hash.Sum(payload)
}

// Pack wraps a raw firmware payload in the distribution container,
// compressing it with the requested codec and recording the payload hash so
// Unpack can verify integrity.
func Pack(payload []byte, compression CompressionType) ([]byte, error) {
	codec, err := GetCodec(compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress firmware payload: %w", err)
	}

	out := make([]byte, containerHeadSize, containerHeadSize+len(compressed))
	copy(out[0:4], containerMagic[:])
	out[4] = containerVersion
	out[5] = byte(compression)
	binary.LittleEndian.PutUint32(out[8:12], uint32(len(payload))) //nolint:gosec // images are far below 4GB
	binary.LittleEndian.PutUint64(out[12:20], hash.Sum(payload))

	return append(out, compressed...), nil
}

// Unpack validates a firmware container, decompresses the payload and
// verifies its hash.
func Unpack(data []byte) (Image, error) {
	if len(data) < containerHeadSize {
		return Image{}, fmt.Errorf("firmware container truncated: %d bytes", len(data))
	}
	if [4]byte(data[0:4]) != containerMagic {
		return Image{}, fmt.Errorf("bad firmware container magic %x", data[0:4])
	}
	if data[4] != containerVersion {
		return Image{}, fmt.Errorf("unsupported firmware container version %d", data[4])
	}

	codec, err := GetCodec(CompressionType(data[5]))
	if err != nil {
		return Image{}, err
	}

	rawSize := binary.LittleEndian.Uint32(data[8:12])
	wantID := binary.LittleEndian.Uint64(data[12:20])

	payload, err := codec.Decompress(data[containerHeadSize:])
	if err != nil {
		return Image{}, fmt.Errorf("decompress firmware payload: %w", err)
	}

	if uint32(len(payload)) != rawSize { //nolint:gosec // size recorded as uint32 above
		return Image{}, fmt.Errorf("firmware payload size mismatch: got %d, want %d", len(payload), rawSize)
	}
	if id := hash.Sum(payload); id != wantID {
		return Image{}, fmt.Errorf("firmware payload hash mismatch: got %016x, want %016x", id, wantID)
	}

	return Image{ID: wantID, Data: payload}, nil
}
