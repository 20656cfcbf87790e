package frame

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftext/alphabet"
	"github.com/arloliu/hufftext/code"
	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/compress"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/internal/hash"
	"github.com/arloliu/hufftext/section"
	"github.com/arloliu/hufftext/tree"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func newCodecs(t testing.TB, opts ...EncoderOption) (*Encoder, *Decoder) {
	t.Helper()

	tr := tree.Build(alphabet.DefaultWeights)
	enc, err := NewEncoder(code.NewTable(tr), opts...)
	require.NoError(t, err)

	return enc, NewDecoder(tr)
}

func randomText(rng *rand.Rand, n int) []byte {
	const letters = "abcdefghijklmnopqrstuvwxyz "
	out := make([]byte, n)
	for i := range out {
		out[i] = letters[rng.Intn(len(letters))]
	}

	return out
}

func TestEncode_Layout(t *testing.T) {
	enc, _ := newCodecs(t)

	data, stats, err := enc.Encode([]byte("a a"))
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize+2)
	require.Equal(t, []byte{0x2B, 0x20}, data[section.HeaderSize:])
	require.Equal(t, int64(12), stats.CompressedBits)

	header, err := ReadHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, header.Flag.GetCompression())
	require.True(t, header.Flag.IsLittleEndian())
	require.Equal(t, uint8(4), header.Flag.PaddingBits)
	require.Equal(t, uint64(3), header.SymbolCount)
	require.Equal(t, uint64(12), header.BitCount)
	require.Equal(t, uint32(2), header.PayloadSize)
	require.Equal(t, hash.Checksum([]byte{0x2B, 0x20}), header.Checksum)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	texts := map[string][]byte{
		"Empty":      {},
		"AA":         []byte("a a"),
		"TwoSpaces":  []byte("  "),
		"NineBits":   []byte("eee"),
		"SixteenBit": []byte("aaaa"),
		"Random":     randomText(rng, 5000),
	}

	for _, compression := range allCompressions {
		for _, bigEndian := range []bool{false, true} {
			opts := []EncoderOption{WithCompression(compression)}
			order := "LE"
			if bigEndian {
				opts = append(opts, WithBigEndian())
				order = "BE"
			}
			enc, dec := newCodecs(t, opts...)
			require.Equal(t, compression, enc.Compression())

			for name, text := range texts {
				t.Run(compression.String()+"/"+order+"/"+name, func(t *testing.T) {
					data, stats, err := enc.Encode(text)
					require.NoError(t, err)
					require.Equal(t, int64(len(text)), stats.Symbols)

					header, err := ReadHeader(data)
					require.NoError(t, err)
					require.Equal(t, bigEndian, header.Flag.IsBigEndian())

					got, err := dec.Decode(data)
					require.NoError(t, err)
					require.Equal(t, string(text), string(got))
				})
			}
		}
	}
}

func TestRoundTrip_S2Levels(t *testing.T) {
	text := randomText(rand.New(rand.NewSource(5)), 4000)

	for _, level := range []compress.S2Level{compress.S2LevelDefault, compress.S2LevelBetter, compress.S2LevelBest} {
		t.Run(level.String(), func(t *testing.T) {
			enc, dec := newCodecs(t, WithCompression(format.CompressionS2), WithS2Level(level))
			require.Equal(t, level, enc.S2Level())

			data, _, err := enc.Encode(text)
			require.NoError(t, err)

			header, err := ReadHeader(data)
			require.NoError(t, err)
			require.Equal(t, format.CompressionS2, header.Flag.GetCompression())

			got, err := dec.Decode(data)
			require.NoError(t, err)
			require.Equal(t, string(text), string(got))
		})
	}
}

func TestDecode_NoSpuriousTrailingSymbol(t *testing.T) {
	enc, dec := newCodecs(t)

	data, stats, err := enc.Encode([]byte("eee"))
	require.NoError(t, err)
	require.Equal(t, 7, stats.PaddingBits)

	// The raw stream alone decodes its padding as an extra symbol.
	raw := data[section.HeaderSize:]
	rawText, err := codec.NewDecoder(dec.inner.Tree()).Decode(raw, len(raw))
	require.NoError(t, err)
	require.Equal(t, "eeel", string(rawText))

	got, err := dec.Decode(data)
	require.NoError(t, err)
	require.Equal(t, "eee", string(got))
}

func TestEncode_Errors(t *testing.T) {
	t.Run("NilTable", func(t *testing.T) {
		_, err := NewEncoder(nil)
		require.Error(t, err)
	})

	t.Run("InvalidCompression", func(t *testing.T) {
		tr := tree.Build(alphabet.DefaultWeights)
		_, err := NewEncoder(code.NewTable(tr), WithCompression(format.CompressionType(0x9)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("InvalidS2Level", func(t *testing.T) {
		tr := tree.Build(alphabet.DefaultWeights)
		_, err := NewEncoder(code.NewTable(tr), WithS2Level(compress.S2Level(7)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("InvalidSymbol", func(t *testing.T) {
		enc, _ := newCodecs(t)
		_, _, err := enc.Encode([]byte("Hello"))
		require.ErrorIs(t, err, errs.ErrInvalidSymbol)
	})

	t.Run("LittleEndianOverridesBigEndian", func(t *testing.T) {
		enc, _ := newCodecs(t, WithBigEndian(), WithLittleEndian())
		data, _, err := enc.Encode([]byte("a"))
		require.NoError(t, err)
		header, err := ReadHeader(data)
		require.NoError(t, err)
		require.True(t, header.Flag.IsLittleEndian())
	})
}

// rewriteHeader re-serializes a modified header in front of the original payload.
func rewriteHeader(t *testing.T, data []byte, modify func(h *section.FrameHeader)) []byte {
	t.Helper()

	header, err := ReadHeader(data)
	require.NoError(t, err)
	modify(header)

	out := header.Bytes()

	return append(out, data[section.HeaderSize:]...)
}

func TestDecode_Corruption(t *testing.T) {
	enc, dec := newCodecs(t)
	valid, _, err := enc.Encode([]byte("a a"))
	require.NoError(t, err)

	clone := func() []byte {
		return append([]byte(nil), valid...)
	}

	t.Run("ShortHeader", func(t *testing.T) {
		_, err := dec.Decode(valid[:section.HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("BadMagic", func(t *testing.T) {
		data := clone()
		data[1] ^= 0xFF
		_, err := dec.Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("UnknownCompression", func(t *testing.T) {
		data := clone()
		data[2] = 0x7
		_, err := dec.Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("BadChecksum", func(t *testing.T) {
		data := clone()
		data[section.HeaderSize] ^= 0x01
		_, err := dec.Decode(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("TruncatedPayload", func(t *testing.T) {
		_, err := dec.Decode(valid[:len(valid)-1])
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})

	t.Run("TrailingBytes", func(t *testing.T) {
		_, err := dec.Decode(append(clone(), 0x00))
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})

	t.Run("BitCountExceedsPayload", func(t *testing.T) {
		data := rewriteHeader(t, clone(), func(h *section.FrameHeader) {
			h.BitCount = 17
			h.Flag.PaddingBits = 7
		})
		_, err := dec.Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})

	t.Run("StreamEndsInsideCode", func(t *testing.T) {
		data := rewriteHeader(t, clone(), func(h *section.FrameHeader) {
			h.BitCount = 11
			h.Flag.PaddingBits = 5
		})
		_, err := dec.Decode(data)
		require.ErrorIs(t, err, errs.ErrTruncatedStream)
	})

	t.Run("SymbolCountMismatch", func(t *testing.T) {
		data := rewriteHeader(t, clone(), func(h *section.FrameHeader) {
			h.SymbolCount = 4
		})
		_, err := dec.Decode(data)
		require.ErrorIs(t, err, errs.ErrSymbolCountMismatch)
	})

	t.Run("CorruptCompressedPayload", func(t *testing.T) {
		zenc, zdec := newCodecs(t, WithCompression(format.CompressionS2))
		data, _, err := zenc.Encode(randomText(rand.New(rand.NewSource(1)), 256))
		require.NoError(t, err)
		for i := section.HeaderSize; i < len(data); i++ {
			data[i] = 0xFF
		}
		_, err = zdec.Decode(data)
		require.Error(t, err)
	})
}

func BenchmarkEncode(b *testing.B) {
	for _, compression := range allCompressions {
		b.Run(compression.String(), func(b *testing.B) {
			enc, _ := newCodecs(b, WithCompression(compression))
			text := randomText(rand.New(rand.NewSource(1)), 4096)

			b.ReportAllocs()
			for b.Loop() {
				_, _, _ = enc.Encode(text)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	enc, dec := newCodecs(b, WithCompression(format.CompressionZstd))
	data, _, err := enc.Encode(randomText(rand.New(rand.NewSource(1)), 4096))
	require.NoError(b, err)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = dec.Decode(data)
	}
}
