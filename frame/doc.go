// Package frame wraps a packed Huffman stream in a self-describing container.
//
// A raw stream cannot tell code bits from the zero padding of its final byte,
// and a decoder fed the whole last byte may emit a trailing symbol that was
// never encoded. A frame records the exact bit count next to the stream, so
// decoding stops on the last real code:
//
//	enc, _ := frame.NewEncoder(table, frame.WithCompression(format.CompressionZstd))
//	data, stats, err := enc.Encode([]byte("eee"))
//
//	dec := frame.NewDecoder(tree)
//	text, err := dec.Decode(data) // "eee"
//
// The header layout lives in package section. The payload is the packed
// stream, optionally passed through one of the compress codecs, and is
// verified against an xxHash64 checksum of the uncompressed stream.
package frame
