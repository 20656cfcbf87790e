// Package compress provides the optional second-stage codecs for framed payloads.
//
// A packed Huffman stream is already close to the entropy of the fixed
// alphabet model, but real text repeats whole words, which a dictionary coder
// can still exploit. The frame package can run the packed stream through one
// of these codecs before storing it:
//   - None: payload stored as packed (default)
//   - Zstd: best ratio, klauspost/compress/zstd (or valyala/gozstd with the gozstd build tag)
//   - S2: fast, klauspost/compress/s2
//   - LZ4: fastest decompression, pierrec/lz4
//
// All codecs implement the same interface:
//
//	codec, err := compress.CreateCodec(format.CompressionS2, "payload")
//	packed, err := codec.Compress(stream)
//	stream, err := codec.Decompress(packed)
//
// Codecs are stateless values; encoder and decoder state is pooled
// internally, so a single codec may be used from many goroutines.
package compress
