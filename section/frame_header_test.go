package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
)

func TestFrameFlag(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		flag := NewFrameFlag()
		require.True(t, flag.IsLittleEndian())
		require.False(t, flag.IsBigEndian())
		require.Equal(t, uint16(MagicFrameV1Opt), flag.GetMagicNumber())
		require.Equal(t, format.CompressionNone, flag.GetCompression())
		require.NoError(t, flag.Validate())
	})

	t.Run("Endianness", func(t *testing.T) {
		flag := NewFrameFlag()
		flag.WithBigEndian()
		require.True(t, flag.IsBigEndian())
		require.Equal(t, uint16(MagicFrameV1Opt), flag.GetMagicNumber())
		flag.WithLittleEndian()
		require.True(t, flag.IsLittleEndian())
	})

	t.Run("Invalid", func(t *testing.T) {
		tests := []struct {
			name string
			flag FrameFlag
		}{
			{"BadMagic", FrameFlag{Options: 0x1230, Compression: uint8(format.CompressionNone)}},
			{"ReservedBit", FrameFlag{Options: MagicFrameV1Opt | 0x0001, Compression: uint8(format.CompressionNone)}},
			{"UnknownCompression", FrameFlag{Options: MagicFrameV1Opt, Compression: 0x9}},
			{"ZeroCompression", FrameFlag{Options: MagicFrameV1Opt}},
			{"PaddingRange", FrameFlag{Options: MagicFrameV1Opt, Compression: uint8(format.CompressionNone), PaddingBits: 8}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require.ErrorIs(t, tt.flag.Validate(), errs.ErrInvalidHeaderFlags)
			})
		}
	})
}

func TestFrameHeader_BytesParse(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		name := "LittleEndian"
		if bigEndian {
			name = "BigEndian"
		}

		t.Run(name, func(t *testing.T) {
			h := NewFrameHeader()
			if bigEndian {
				h.Flag.WithBigEndian()
			}
			h.Flag.SetCompression(format.CompressionZstd)
			h.Flag.PaddingBits = 4
			h.SymbolCount = 3
			h.BitCount = 12
			h.PayloadSize = 17
			h.Checksum = 0x0123456789abcdef

			data := h.Bytes()
			require.Len(t, data, HeaderSize)
			// Options is little-endian regardless of the header byte order.
			require.Equal(t, byte(MagicFrameV1Opt&0xFF)|byte(h.Flag.Options&EndiannessMask), data[0])
			require.Equal(t, byte(MagicFrameV1Opt>>8), data[1])

			var parsed FrameHeader
			require.NoError(t, parsed.Parse(data))
			require.Equal(t, *h, parsed)
			require.Equal(t, uint64(2), parsed.RawSize())
		})
	}
}

func TestFrameHeader_LayoutLittleEndian(t *testing.T) {
	h := NewFrameHeader()
	h.SymbolCount = 1
	h.BitCount = 8
	h.PayloadSize = 1
	h.Checksum = 2

	data := h.Bytes()
	require.Equal(t, []byte{0x10, 0xEC, 0x01, 0x00}, data[0:4])
	require.Equal(t, byte(1), data[4])
	require.Equal(t, byte(8), data[12])
	require.Equal(t, byte(1), data[20])
	require.Equal(t, byte(2), data[24])
}

func TestFrameHeader_ParseErrors(t *testing.T) {
	valid := NewFrameHeader()
	valid.BitCount = 9
	valid.Flag.PaddingBits = 7

	t.Run("Size", func(t *testing.T) {
		var h FrameHeader
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize-1)), errs.ErrInvalidHeaderSize)
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	})

	t.Run("Magic", func(t *testing.T) {
		data := valid.Bytes()
		data[1] = 0x00
		var h FrameHeader
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidHeaderFlags)
	})

	t.Run("PaddingDisagreesWithBitCount", func(t *testing.T) {
		data := valid.Bytes()
		data[3] = 2
		var h FrameHeader
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidHeaderFlags)
	})

	t.Run("Valid", func(t *testing.T) {
		var h FrameHeader
		require.NoError(t, h.Parse(valid.Bytes()))
		require.Equal(t, uint64(9), h.BitCount)
		require.Equal(t, uint64(2), h.RawSize())
	})
}
