// Package section defines the binary header of a hufftext frame.
//
// A frame is a fixed 32-byte header followed by the payload:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                 │
//	│  0-1   Options: magic 0xEC1 (bits 4-15), endianness bit  │
//	│  2     Payload compression                               │
//	│  3     Padding bits in the final packed byte (0-7)       │
//	│  4-11  Symbol count                                      │
//	│  12-19 Bit count of the packed stream                    │
//	│  20-23 Stored payload size                               │
//	│  24-31 xxHash64 of the packed stream                     │
//	├──────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                              │
//	│  - packed Huffman stream, optionally compressed          │
//	└──────────────────────────────────────────────────────────┘
//
// The Options field is always little-endian so the endianness bit can be read
// before the engine for the remaining fields is chosen.
//
// The bit count is what the raw format lacks: with it the decoder stops
// exactly at the end of the last code and never interprets padding bits.
package section
