// Package hufftext compresses lowercase English text with a static Huffman code.
//
// The alphabet is fixed to the 26 lowercase letters and the space, and the
// code is derived from a fixed frequency table, so encoder and decoder agree
// on the tree without transmitting it. Each symbol becomes a variable-length
// prefix-free code; codes are packed most significant bit first and the final
// byte is padded with zero bits.
//
// # Basic Usage
//
// Compressing and restoring a raw stream:
//
//	data, stats, err := hufftext.Compress([]byte("a a"))
//	// data == []byte{0x2B, 0x20}, stats.CompressedBits == 12
//
//	text, err := hufftext.Decompress(data, len(data))
//	// text == "a a"
//
// A raw stream carries no length, and the padding of its final byte can decode
// as an extra symbol: "eee" packs into 9 bits and decodes back as "eeel".
// Frames record the exact bit count and a checksum, and restore the input
// exactly:
//
//	data, _, err := hufftext.CompressFrame([]byte("eee"), frame.WithCompression(format.CompressionZstd))
//	text, err := hufftext.DecompressFrame(data) // "eee"
//
// # Package Structure
//
// This package wraps the tree, code, codec and frame packages with a tree and
// code table built once per process. Use those packages directly for custom
// weights or finer control.
package hufftext

import (
	"io"
	"sync"

	"github.com/arloliu/hufftext/alphabet"
	"github.com/arloliu/hufftext/code"
	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/frame"
	"github.com/arloliu/hufftext/tree"
)

var (
	defaultOnce    sync.Once
	defaultTree    *tree.Tree
	defaultTable   *code.Table
	defaultEncoder *codec.Encoder
	defaultDecoder *codec.Decoder
)

func initDefaults() {
	defaultOnce.Do(func() {
		defaultTree = tree.Build(alphabet.DefaultWeights)
		defaultTable = code.NewTable(defaultTree)
		defaultDecoder = codec.NewDecoder(defaultTree)

		enc, err := codec.NewEncoder(defaultTable)
		if err != nil {
			panic(err)
		}
		defaultEncoder = enc
	})
}

// DefaultTree returns the tree built from alphabet.DefaultWeights.
// It is built on first use and shared; callers must not modify it.
func DefaultTree() *tree.Tree {
	initDefaults()
	return defaultTree
}

// DefaultTable returns the code table of DefaultTree.
func DefaultTable() *code.Table {
	initDefaults()
	return defaultTable
}

// NewEncoder creates a raw stream encoder over the default code table.
func NewEncoder(opts ...codec.EncoderOption) (*codec.Encoder, error) {
	return codec.NewEncoder(DefaultTable(), opts...)
}

// NewDecoder creates a raw stream decoder over the default tree.
func NewDecoder() *codec.Decoder {
	return codec.NewDecoder(DefaultTree())
}

// Compress packs text into a raw stream with the default code table.
//
// Encoding stops at the first newline.
//
// Returns:
//   - []byte: packed stream
//   - codec.Stats: bit counters of this call
//   - error: ErrInvalidSymbol for a byte outside the alphabet
func Compress(text []byte) ([]byte, codec.Stats, error) {
	initDefaults()
	return defaultEncoder.Encode(text)
}

// Decompress decodes the first size bytes of a raw stream.
//
// The size must come from outside the stream, for example the file size.
// Padding bits of the final byte are decoded like code bits.
//
// Returns:
//   - []byte: decoded text
//   - error: ErrMissingSizeMetadata if size is negative or exceeds len(data)
func Decompress(data []byte, size int) ([]byte, error) {
	initDefaults()
	return defaultDecoder.Decode(data, size)
}

// CompressTo streams text from src into a raw stream written to dst.
func CompressTo(dst io.Writer, src io.Reader) (codec.Stats, error) {
	initDefaults()
	return defaultEncoder.EncodeTo(dst, src)
}

// DecompressFrom streams size bytes of raw stream from src and writes the text to dst.
func DecompressFrom(dst io.Writer, src io.Reader, size int64) (int64, error) {
	initDefaults()
	return defaultDecoder.DecodeFrom(dst, src, size)
}

// CompressFrame packs text into a frame with the default code table.
func CompressFrame(text []byte, opts ...frame.EncoderOption) ([]byte, codec.Stats, error) {
	enc, err := frame.NewEncoder(DefaultTable(), opts...)
	if err != nil {
		return nil, codec.Stats{}, err
	}

	return enc.Encode(text)
}

// DecompressFrame validates a frame and restores its text exactly.
func DecompressFrame(data []byte) ([]byte, error) {
	return frame.NewDecoder(DefaultTree()).Decode(data)
}

// Supports reports whether an execution strategy is available.
// Only StrategySerial is implemented.
func Supports(strategy format.Strategy) bool {
	return codec.Supports(strategy)
}
