package firmware

import "fmt"

// CompressionType identifies how an image payload is compressed inside the
// container.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload verbatim.
	CompressionZstd CompressionType = 0x2 // CompressionZstd uses Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 uses S2.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 uses LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses firmware image payloads.
//
// Firmware images are distributed compressed and unpacked on the host before
// being chunked into update packets; the device only ever sees raw 7-bit
// words. Implementations may reuse internal buffers but must not modify
// their input, and the returned slice is owned by the caller.
type Codec interface {
	// Compress compresses data and returns the compressed result.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress, returning the original payload. It
	// returns an error when the data is corrupted or was produced by a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
