package format

import "strings"

type (
	CompressionType uint8
	Strategy        uint8
	Mode            uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	StrategySerial   Strategy = 0x0 // StrategySerial encodes the whole input in a single pass.
	StrategyParallel Strategy = 0x1 // StrategyParallel is declared but not implemented.

	ModeDecompress Mode = 0x0 // ModeDecompress unpacks a bitstream back into text.
	ModeCompress   Mode = 0x1 // ModeCompress packs text into a bitstream.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name.
// The empty string maps to CompressionNone.
func ParseCompressionType(s string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategySerial:
		return "Serial"
	case StrategyParallel:
		return "Parallel"
	default:
		return "Unknown"
	}
}

func (m Mode) String() string {
	switch m {
	case ModeCompress:
		return "Compress"
	case ModeDecompress:
		return "Decompress"
	default:
		return "Unknown"
	}
}

// ParseMode parses "compress"/"decompress", also accepting the numeric
// selections "1" and "0".
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compress", "1":
		return ModeCompress, true
	case "decompress", "0":
		return ModeDecompress, true
	default:
		return 0, false
	}
}
