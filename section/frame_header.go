package section

import (
	"fmt"

	"github.com/arloliu/hufftext/endian"
	"github.com/arloliu/hufftext/errs"
)

// FrameHeader is the fixed 32-byte header of a frame.
type FrameHeader struct {
	// Flag holds the magic number, endianness, compression and padding.
	Flag FrameFlag // 4 bytes, offset 0-3
	// SymbolCount is the number of symbols in the packed stream.
	SymbolCount uint64 // 8 bytes, offset 4-11
	// BitCount is the number of code bits in the packed stream, excluding padding.
	BitCount uint64 // 8 bytes, offset 12-19
	// PayloadSize is the number of payload bytes following the header, after compression.
	PayloadSize uint32 // 4 bytes, offset 20-23
	// Checksum is the xxHash64 of the packed stream before compression.
	Checksum uint64 // 8 bytes, offset 24-31
}

// NewFrameHeader creates an empty little-endian, uncompressed header.
func NewFrameHeader() *FrameHeader {
	return &FrameHeader{Flag: NewFrameFlag()}
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags are invalid.
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Flag.PaddingBits = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.SymbolCount = engine.Uint64(data[4:12])
	h.BitCount = engine.Uint64(data[12:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	if uint64(h.Flag.PaddingBits) != (8-h.BitCount%8)%8 {
		return fmt.Errorf("%w: %d padding bits for %d code bits",
			errs.ErrInvalidHeaderFlags, h.Flag.PaddingBits, h.BitCount)
	}

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *FrameHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *FrameHeader) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Compression, h.Flag.PaddingBits)
	dst = engine.AppendUint64(dst, h.SymbolCount)
	dst = engine.AppendUint64(dst, h.BitCount)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// RawSize returns the size in bytes of the packed stream before compression.
func (h *FrameHeader) RawSize() uint64 {
	return (h.BitCount + 7) / 8
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *FrameHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
