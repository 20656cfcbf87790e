package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arloliu/hufftext/errs"
)

// EncodeTo reads text from src and writes the packed stream to dst.
//
// Input ends at the first newline or at EOF. The output is byte for byte
// identical to Encode on the same text. On ErrInvalidSymbol, bits already
// written to dst are not retracted.
func (e *Encoder) EncodeTo(dst io.Writer, src io.Reader) (Stats, error) {
	return e.pack(dst, bufio.NewReader(src))
}

// DecodeFrom reads exactly size bytes of packed stream from src and writes
// the decoded text to dst. Padding bits behave as in Decode.
//
// Returns:
//   - int64: number of symbols written
//   - error: ErrMissingSizeMetadata for a negative size, ErrTruncatedStream if
//     src ends before size bytes, or a write error
func (d *Decoder) DecodeFrom(dst io.Writer, src io.Reader, size int64) (int64, error) {
	if size < 0 {
		return 0, fmt.Errorf("%w: byte count %d", errs.ErrMissingSizeMetadata, size)
	}

	out := bufio.NewWriter(dst)

	written, _, err := d.unpack(out, io.LimitReader(src, size), size*8)
	if err != nil {
		return written, err
	}

	if err := out.Flush(); err != nil {
		return written, fmt.Errorf("write output: %w", err)
	}

	return written, nil
}
