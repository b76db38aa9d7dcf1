// Package firmware handles device firmware images on the host side.
//
// An image travels in three shapes:
//
//  1. A distribution container: a small fixed header (magic, version,
//     compression type, raw size, payload hash) followed by the compressed
//     payload. Pack and Unpack convert between containers and images.
//  2. An unpacked Image: the raw payload plus its 64-bit identifier.
//  3. A stream of framed update packets: the Chunker re-expands the payload
//     into 7-bit words and splits it into the largest chunks the configured
//     packet size allows.
//
// # Compression
//
// Containers may be compressed with any of the built-in codecs:
//   - None: payload stored verbatim
//   - Zstd: best ratio, the recommended default for distribution
//   - S2: balanced ratio and speed
//   - LZ4: fastest unpacking
//
// The Zstd codec has two interchangeable implementations selected by build
// tags: a cgo binding when cgo is available and a pure-Go fallback otherwise.
//
// Unpack verifies the container magic, version and the payload hash, so a
// corrupted or truncated image is rejected before a single packet is built.
//
// # Typical Flow
//
//	img, err := firmware.Unpack(containerBytes)
//	if err != nil {
//	    return err
//	}
//
//	c, err := firmware.NewChunker(img, deviceIndex, gridlink.DefaultPacketBytes)
//	if err != nil {
//	    return err
//	}
//	for msg := range c.All() {
//	    if err := port.Send(msg); err != nil {
//	        return err
//	    }
//	}
package firmware
