package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/hufftext/code"
	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/compress"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/internal/hash"
	"github.com/arloliu/hufftext/internal/options"
	"github.com/arloliu/hufftext/internal/pool"
	"github.com/arloliu/hufftext/section"
)

// payloadTarget labels codec errors raised for frame payloads.
const payloadTarget = "frame payload"

// EncoderConfig holds the frame settings applied to every Encode call.
type EncoderConfig struct {
	compression format.CompressionType
	s2Level     compress.S2Level
	bigEndian   bool
}

// EncoderOption is a functional option for configuring a frame Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload compression.
//
// Parameters:
//   - compression: CompressionNone, CompressionZstd, CompressionS2 or CompressionLZ4
//
// Returns an option that fails with ErrInvalidCompression for any other value.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if _, err := compress.CreateCodec(compression, payloadTarget); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// WithS2Level sets the encoder level used when the payload compression is
// CompressionS2. Other compressions ignore it. The default is
// compress.S2LevelDefault.
//
// Returns an option that fails with ErrInvalidCompression for an unknown level.
func WithS2Level(level compress.S2Level) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if !level.Valid() {
			return fmt.Errorf("%w: s2 level %d", errs.ErrInvalidCompression, level)
		}
		cfg.s2Level = level

		return nil
	})
}

// WithLittleEndian writes header fields in little-endian order. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian writes header fields in big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.bigEndian = true
	})
}

// Encoder produces frames from text.
//
// An Encoder is safe for concurrent use.
type Encoder struct {
	cfg   *EncoderConfig
	inner *codec.Encoder
	codec compress.Codec
}

// NewEncoder creates a frame Encoder that packs symbols with table.
//
// Returns:
//   - *Encoder: encoder ready for use
//   - error: nil table or an option error
func NewEncoder(table *code.Table, opts ...EncoderOption) (*Encoder, error) {
	if table == nil {
		return nil, errors.New("frame: nil code table")
	}

	cfg := &EncoderConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	inner, err := codec.NewEncoder(table)
	if err != nil {
		return nil, err
	}

	payloadCodec, err := newPayloadCodec(cfg)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg, inner: inner, codec: payloadCodec}, nil
}

func newPayloadCodec(cfg *EncoderConfig) (compress.Codec, error) {
	if cfg.compression == format.CompressionS2 {
		return compress.NewS2Compressor(cfg.s2Level), nil
	}

	return compress.CreateCodec(cfg.compression, payloadTarget)
}

// Compression returns the payload compression of produced frames.
func (e *Encoder) Compression() format.CompressionType {
	return e.cfg.compression
}

// S2Level returns the S2 encoder level. It only matters for CompressionS2.
func (e *Encoder) S2Level() compress.S2Level {
	return e.cfg.s2Level
}

// Encode packs text and wraps the stream in a frame.
//
// Text follows the rules of codec.Encoder.Encode: it ends at the first
// newline and may only contain lowercase letters and spaces.
//
// Returns:
//   - []byte: header followed by the payload, owned by the caller
//   - codec.Stats: statistics of the packed stream; Bytes is the raw stream size
//   - error: ErrInvalidSymbol, a payload compression error, or
//     ErrInvalidPayloadSize if the payload does not fit the header
func (e *Encoder) Encode(text []byte) ([]byte, codec.Stats, error) {
	raw, stats, err := e.inner.Encode(text)
	if err != nil {
		return nil, codec.Stats{}, err
	}

	payload, err := e.codec.Compress(raw)
	if err != nil {
		return nil, codec.Stats{}, fmt.Errorf("compress payload with %s: %w", e.cfg.compression, err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, codec.Stats{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidPayloadSize, len(payload))
	}

	header := section.NewFrameHeader()
	if e.cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetCompression(e.cfg.compression)
	header.Flag.PaddingBits = uint8(stats.PaddingBits) //nolint:gosec
	header.SymbolCount = uint64(stats.Symbols)         //nolint:gosec
	header.BitCount = uint64(stats.CompressedBits)     //nolint:gosec
	header.PayloadSize = uint32(len(payload))          //nolint:gosec
	header.Checksum = hash.Checksum(raw)

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.Grow(section.HeaderSize + len(payload))
	buf.B = header.AppendTo(buf.B)
	buf.B = append(buf.B, payload...)

	return buf.Clone(), stats, nil
}
