package section

import "github.com/arloliu/hufftext/format"

const (
	// Bit masks
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicFrameV1Opt is the version 1 magic number for frames.
	MagicFrameV1Opt = 0xEC10

	// HeaderSize is the fixed frame header size in bytes.
	HeaderSize = 32

	// MaxPaddingBits is the largest number of padding bits in a packed stream.
	MaxPaddingBits = 7
)

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}
