package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/arloliu/hufftext/alphabet"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/internal/pool"
	"github.com/arloliu/hufftext/tree"
)

// Walker is the decoding automaton: its only state is the current node.
//
// It starts at the root, moves left on a 0 bit and right on a 1 bit, and
// returns to the root each time it reaches a leaf.
//
// Note: Walker is NOT thread-safe. The tree it walks may be shared.
type Walker struct {
	tree *tree.Tree
	cur  tree.NodeID
}

// NewWalker creates a Walker positioned at the root of t.
func NewWalker(t *tree.Tree) *Walker {
	return &Walker{tree: t, cur: t.Root()}
}

// Feed consumes one bit. When the move lands on a leaf, the leaf's symbol is
// returned with emitted set and the walker is back at the root.
func (w *Walker) Feed(bit uint64) (sym alphabet.Symbol, emitted bool) {
	w.cur = w.tree.Step(w.cur, bit)

	sym, emitted = w.tree.Node(w.cur).Symbol()
	if emitted {
		w.cur = w.tree.Root()
	}

	return sym, emitted
}

// AtRoot reports whether no code is partially consumed.
func (w *Walker) AtRoot() bool {
	return w.cur == w.tree.Root()
}

// Reset moves the walker back to the root, dropping any partial code.
func (w *Walker) Reset() {
	w.cur = w.tree.Root()
}

// Decoder unpacks raw bitstreams by walking the tree.
//
// A Decoder holds only the tree and is safe for concurrent use.
type Decoder struct {
	tree *tree.Tree
}

// NewDecoder creates a Decoder for streams packed with the code table of t.
func NewDecoder(t *tree.Tree) *Decoder {
	return &Decoder{tree: t}
}

// Tree returns the tree the decoder walks.
func (d *Decoder) Tree() *tree.Tree {
	return d.tree
}

// Decode unpacks the first byteCount bytes of data, eight bits per byte, most
// significant first.
//
// The padding bits of the final byte go through the walker too; see the
// package documentation for the trailing symbol this can produce. Use
// DecodeBits when the exact bit length is known.
//
// Returns:
//   - []byte: decoded text, one byte per symbol, no trailing newline
//   - error: ErrMissingSizeMetadata if byteCount is negative or larger than data
func (d *Decoder) Decode(data []byte, byteCount int) ([]byte, error) {
	if byteCount < 0 || byteCount > len(data) {
		return nil, fmt.Errorf("%w: byte count %d for %d bytes of input",
			errs.ErrMissingSizeMetadata, byteCount, len(data))
	}

	out, _, err := d.walk(data[:byteCount], int64(byteCount)*8)

	return out, err
}

// DecodeBits unpacks exactly bitCount bits of data.
//
// Returns:
//   - []byte: decoded text
//   - error: ErrMissingSizeMetadata for a negative bitCount, ErrTruncatedStream
//     if data is shorter than bitCount or the last code is incomplete
func (d *Decoder) DecodeBits(data []byte, bitCount int64) ([]byte, error) {
	if bitCount < 0 {
		return nil, fmt.Errorf("%w: bit count %d", errs.ErrMissingSizeMetadata, bitCount)
	}
	if bitCount > int64(len(data))*8 {
		return nil, fmt.Errorf("%w: need %d bits, have %d",
			errs.ErrTruncatedStream, bitCount, int64(len(data))*8)
	}

	out, atRoot, err := d.walk(data[:(bitCount+7)/8], bitCount)
	if err != nil {
		return nil, err
	}
	if !atRoot {
		return nil, fmt.Errorf("%w: stream ends inside a code", errs.ErrTruncatedStream)
	}

	return out, nil
}

// walk decodes the first bits bits of data into a fresh slice.
func (d *Decoder) walk(data []byte, bits int64) (out []byte, atRoot bool, err error) {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	_, atRoot, err = d.unpack(buf, bytes.NewReader(data), bits)
	if err != nil {
		return nil, false, err
	}

	return buf.Clone(), atRoot, nil
}

// unpack feeds bits bits of src through a fresh Walker and writes every
// emitted symbol to dst.
//
// Returns:
//   - written: number of symbols written
//   - atRoot: false if the last code was left unfinished
//   - err: ErrTruncatedStream if src ends early, or a write error
func (d *Decoder) unpack(dst io.ByteWriter, src io.Reader, bits int64) (written int64, atRoot bool, err error) {
	in := bitio.NewReader(src)
	walker := NewWalker(d.tree)

	for n := bits; n > 0; n-- {
		bit, err := in.ReadBool()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return written, false, fmt.Errorf("%w: expected %d bits, got %d",
				errs.ErrTruncatedStream, bits, bits-n)
		}
		if err != nil {
			return written, false, fmt.Errorf("read input: %w", err)
		}

		var v uint64
		if bit {
			v = 1
		}
		if sym, emitted := walker.Feed(v); emitted {
			if err := dst.WriteByte(sym.Byte()); err != nil {
				return written, false, fmt.Errorf("write output: %w", err)
			}
			written++
		}
	}

	return written, walker.AtRoot(), nil
}
