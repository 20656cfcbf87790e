package frame

import (
	"fmt"

	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/compress"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/internal/hash"
	"github.com/arloliu/hufftext/section"
	"github.com/arloliu/hufftext/tree"
)

// Decoder restores text from frames.
//
// A Decoder is safe for concurrent use.
type Decoder struct {
	inner *codec.Decoder
}

// NewDecoder creates a frame Decoder that walks t.
func NewDecoder(t *tree.Tree) *Decoder {
	return &Decoder{inner: codec.NewDecoder(t)}
}

// ReadHeader parses and validates the header at the start of data.
func ReadHeader(data []byte) (*section.FrameHeader, error) {
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	header := section.NewFrameHeader()
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	return header, nil
}

// Decode validates a frame and decodes exactly the bits it declares.
//
// Returns:
//   - []byte: decoded text, one byte per symbol
//   - error: ErrInvalidHeaderSize, ErrInvalidHeaderFlags, ErrInvalidPayloadSize,
//     ErrChecksumMismatch, ErrTruncatedStream or ErrSymbolCountMismatch
func (d *Decoder) Decode(data []byte) ([]byte, error) {
	header, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[section.HeaderSize:]
	if uint64(len(payload)) != uint64(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header declares %d bytes, frame carries %d",
			errs.ErrInvalidPayloadSize, header.PayloadSize, len(payload))
	}

	payloadCodec, err := compress.CreateCodec(header.Flag.GetCompression(), payloadTarget)
	if err != nil {
		return nil, err
	}

	raw, err := payloadCodec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress payload with %s: %w", header.Flag.GetCompression(), err)
	}
	if uint64(len(raw)) != header.RawSize() {
		return nil, fmt.Errorf("%w: %d code bits need %d bytes, payload holds %d",
			errs.ErrInvalidPayloadSize, header.BitCount, header.RawSize(), len(raw))
	}

	if !hash.Verify(raw, header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	text, err := d.inner.DecodeBits(raw, int64(header.BitCount)) //nolint:gosec
	if err != nil {
		return nil, err
	}

	if uint64(len(text)) != header.SymbolCount {
		return nil, fmt.Errorf("%w: header declares %d, decoded %d",
			errs.ErrSymbolCountMismatch, header.SymbolCount, len(text))
	}

	return text, nil
}
