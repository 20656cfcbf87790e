// Package codec packs text into a Huffman bitstream and unpacks it again.
//
// The Encoder maps every input byte to a symbol, looks up its code in a
// code.Table and packs the codes most significant bit first into bytes. The
// final byte is padded with zero bits. The raw stream has no header: the
// Decoder needs the stream's byte count from the caller.
//
// The Decoder never consults the code table. It walks the tree one bit at a
// time from the root, emitting a symbol whenever a leaf is reached.
//
// # Trailing padding
//
// The zero bits that pad the final byte are indistinguishable from real
// "left" moves. When a raw stream is decoded by byte count, they are fed
// through the walker like any other bit. With the default tree the left-most
// leaf ('l') is five zero bits deep, so five or more padding bits produce one
// spurious trailing 'l'; fewer padding bits leave an unfinished path and are
// dropped. Decode keeps this behavior for compatibility with existing files.
// DecodeBits stops after an exact bit count and has no such ambiguity; the
// frame package records that count in its header.
//
// # Basic Usage
//
//	enc, _ := codec.NewEncoder(table)
//	packed, stats, err := enc.Encode([]byte("a a"))
//
//	dec := codec.NewDecoder(tr)
//	text, err := dec.Decode(packed, len(packed))
package codec
