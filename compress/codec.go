package compress

import (
	"fmt"

	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
)

// Compressor applies a general-purpose compression pass to a packed Huffman stream.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller, except for NoOpCompressor
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Decompress returns an error if the data is corrupted or was produced by a
// different algorithm.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// Codecs are cheap values that share pooled state, so callers may create one
// per operation. S2 codecs use S2LevelDefault; call NewS2Compressor for
// another level.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: codec instance for the specified type
//   - error: ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(S2LevelDefault), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s %s", errs.ErrInvalidCompression, target, compressionType)
	}
}
