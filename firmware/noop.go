package firmware

// NoOpCodec stores firmware payloads verbatim. Useful for tiny images and
// for debugging container handling without a compressor in the way.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that passes data through unchanged.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input data as-is. The returned slice shares the
// input's memory.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is. The returned slice shares the
// input's memory.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
