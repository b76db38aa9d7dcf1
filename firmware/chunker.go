package firmware

import (
	"fmt"
	"iter"

	"github.com/gridlink/gridlink/packet"
	"github.com/gridlink/gridlink/protocol"
)

// Chunker turns an unpacked firmware image into a sequence of complete
// framed firmware-update packets for one device.
//
// The raw 8-bit payload is first re-expanded into 7-bit words (the only
// value range a firmware-update field can carry), then split into the
// largest chunks that fit the configured packet size. Transmission order is
// the word order; the device reassembles the image from consecutive chunks.
type Chunker struct {
	words          []byte
	deviceIndex    protocol.TopologyIndex
	maxPacketBytes int
	wordsPerChunk  int
}

// NewChunker creates a Chunker producing packets of at most maxPacketBytes
// bytes, addressed to deviceIndex. It returns an error when maxPacketBytes
// cannot hold the framing plus at least one payload word.
func NewChunker(img Image, deviceIndex protocol.TopologyIndex, maxPacketBytes int) (*Chunker, error) {
	fixedBits := protocol.NumSysexHeaderBytes*protocol.BitsPerPacketByte +
		protocol.MessageTypeBits +
		protocol.FirmwareChunkSizeBits +
		protocol.BitsPerPacketByte // footer

	wordsPerChunk := (maxPacketBytes*protocol.BitsPerPacketByte - fixedBits) / protocol.FirmwareWordBits
	if wordsPerChunk < 1 {
		return nil, fmt.Errorf("packet size %d too small for a firmware chunk", maxPacketBytes)
	}
	if wordsPerChunk > protocol.FirmwareChunkMax {
		wordsPerChunk = protocol.FirmwareChunkMax
	}

	return &Chunker{
		words:          sevenBitWords(img.Data),
		deviceIndex:    deviceIndex,
		maxPacketBytes: maxPacketBytes,
		wordsPerChunk:  wordsPerChunk,
	}, nil
}

// NumPackets returns how many packets the image will produce.
func (c *Chunker) NumPackets() int {
	return (len(c.words) + c.wordsPerChunk - 1) / c.wordsPerChunk
}

// All yields one framed packet per chunk, in transmission order. Each
// yielded slice is independently allocated and remains valid after the
// iteration advances.
func (c *Chunker) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for off := 0; off < len(c.words); off += c.wordsPerChunk {
			end := off + c.wordsPerChunk
			if end > len(c.words) {
				end = len(c.words)
			}

			p := packet.NewBuilder(c.maxPacketBytes)
			p.WriteSysexHeader(c.deviceIndex)
			if !p.AddFirmwareUpdatePacket(c.words[off:end]) || !p.WriteSysexFooter() {
				// Cannot happen: wordsPerChunk is sized from maxPacketBytes.
				return
			}

			if !yield(p.Bytes()) {
				return
			}
		}
	}
}

// sevenBitWords expands 8-bit payload bytes into 7-bit words, LSB-first,
// mirroring the packing the device applies when reassembling the image.
func sevenBitWords(data []byte) []byte {
	words := make([]byte, 0, (len(data)*8+6)/7)

	var acc uint32
	var nbits int
	for _, b := range data {
		acc |= uint32(b) << nbits
		nbits += 8
		for nbits >= 7 {
			words = append(words, byte(acc&0x7F))
			acc >>= 7
			nbits -= 7
		}
	}
	if nbits > 0 {
		words = append(words, byte(acc&0x7F))
	}

	return words
}
