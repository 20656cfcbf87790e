package section

import (
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
)

// FrameFlag is the packed option block at the start of a frame header.
type FrameFlag struct {
	// Options is a packed field for various options.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 are the magic number, 0xEC10 for frame format v1.
	Options uint16

	// Compression is the payload compression, a format.CompressionType.
	Compression uint8

	// PaddingBits is the number of zero bits that pad the final packed byte.
	PaddingBits uint8
}

// NewFrameFlag creates a little-endian, uncompressed FrameFlag.
func NewFrameFlag() FrameFlag {
	return FrameFlag{
		Options:     MagicFrameV1Opt,
		Compression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *FrameFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetCompression sets the payload compression type.
func (f *FrameFlag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f FrameFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, reserved bits, compression type and
// padding range.
func (f FrameFlag) Validate() error {
	if f.GetMagicNumber() != MagicFrameV1Opt {
		return errs.ErrInvalidHeaderFlags
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.Compression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if f.PaddingBits > MaxPaddingBits {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
